// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned if a directory or file has no name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrReservedName is returned for the names "." and "..".
	ErrReservedName = errors.New("name is reserved")

	// ErrNameContainsSeparator is returned if a name contains a path
	// separator and so would span more than a single path segment.
	ErrNameContainsSeparator = errors.New("name must not contain path separators")

	// ErrUnknownEntryType is returned if an [Entry] of any type other than
	// [EntryTypeDirectory] or [EntryTypeFile] is about to be materialized.
	ErrUnknownEntryType = errors.New("unknown entry type")
)

// ContractViolationError is returned if a tree or an entry does not meet the
// requirements of the model. It indicates a logic error of the producer that
// must be fixed before anything is materialized.
type ContractViolationError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation: %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ContractViolationError) Is(other error) bool {
	_, ok := other.(*ContractViolationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ContractViolationError) Unwrap() error {
	return e.Err
}
