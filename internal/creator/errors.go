// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

import "fmt"

// IOError wraps any error of the underlying file system or archive together
// with the operation and the path that caused it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*IOError) Is(other error) bool {
	_, ok := other.(*IOError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *IOError) Unwrap() error {
	return e.Err
}
