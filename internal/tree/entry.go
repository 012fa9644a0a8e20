// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tree

import "fmt"

// EntryType defines the type of an [Entry].
type EntryType int

const (
	// EntryTypeUnknown is the zero value. It is never produced by [Walk] and
	// is rejected by consumers.
	EntryTypeUnknown EntryType = iota

	// EntryTypeDirectory is a leaf directory. It is created as an empty
	// directory.
	EntryTypeDirectory

	// EntryTypeFile is a file. It is created as an empty regular file.
	EntryTypeFile
)

// String returns a string representation of the EntryType.
func (t EntryType) String() string {
	switch t {
	case EntryTypeUnknown:
		return "unknown"
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeFile:
		return "file"
	default:
		return fmt.Sprintf("EntryType(%d)", int(t))
	}
}

// Entry is a resolved leaf of a [Directory] tree.
type Entry struct {
	// Type of this entry.
	Type EntryType

	// Path is the slash-separated path of the entry, starting with the name
	// of the walked directory. It never starts or ends with a separator.
	Path string
}

// NewEntry creates a new [Entry].
func NewEntry(entryType EntryType, path string) Entry {
	return Entry{
		Type: entryType,
		Path: path,
	}
}

// String returns a string representation of the Entry.
func (e Entry) String() string {
	return e.Type.String() + " " + e.Path
}

// IsDir returns true if the [Entry] is a directory.
func (e Entry) IsDir() bool {
	return e.Type == EntryTypeDirectory
}

// IsFile returns true if the [Entry] is a file.
func (e Entry) IsFile() bool {
	return e.Type == EntryTypeFile
}
