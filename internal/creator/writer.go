// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

// Writer defines the interface for materializing entries. Paths are the
// slash-separated entry paths.
//
// WriteDirectory and WriteRegular must create any missing parent
// directories. Failures are supposed to be returned as [IOError].
type Writer interface {
	Exists(path string) (bool, error)
	WriteDirectory(path string) error
	WriteRegular(path string) error
}
