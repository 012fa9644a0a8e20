// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tree

import (
	"fmt"
	"strings"
)

// ValidateName checks that the name is a single path segment: not empty, not
// "." or ".." and without any separators. Backslashes are rejected on all
// platforms so templates stay portable.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case name == "." || name == "..":
		return ErrReservedName
	case strings.ContainsAny(name, `/\`):
		return ErrNameContainsSeparator
	default:
		return nil
	}
}

// Validate checks the names of the directory and all its descendants. The
// first invalid name found is returned as [ContractViolationError] with the
// path of the offending node.
func (d *Directory) Validate() error {
	return d.validate("")
}

func (d *Directory) validate(parent string) error {
	path := joinPath(parent, d.Name)

	if err := ValidateName(d.Name); err != nil {
		return &ContractViolationError{Path: path, Err: err}
	}

	for idx := range d.Directories {
		if err := d.Directories[idx].validate(path); err != nil {
			return err
		}
	}

	return ValidateFiles(path, d.Files)
}

// ValidateFiles checks the names of the given files. The parent path is only
// used for error reporting.
func ValidateFiles(parent string, files []File) error {
	for _, file := range files {
		if err := ValidateName(file.Name); err != nil {
			return &ContractViolationError{
				Path: joinPath(parent, file.Name),
				Err:  err,
			}
		}
	}

	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + Separator + name
}

// Validate checks that the entry can be materialized. Its type must be
// [EntryTypeDirectory] or [EntryTypeFile] and every segment of its path must
// be a valid name.
func (e Entry) Validate() error {
	if !e.IsDir() && !e.IsFile() {
		return &ContractViolationError{
			Path: e.Path,
			Err:  fmt.Errorf("%w: %s", ErrUnknownEntryType, e.Type),
		}
	}

	for segment := range strings.SplitSeq(e.Path, Separator) {
		if err := ValidateName(segment); err != nil {
			return &ContractViolationError{Path: e.Path, Err: err}
		}
	}

	return nil
}
