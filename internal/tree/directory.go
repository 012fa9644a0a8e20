// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tree

// Directory is a directory tree node. It may contain subdirectories and
// files. A Directory without any of them is a leaf directory.
type Directory struct {
	Name        string      `yaml:"name"`
	Files       []File      `yaml:"files,omitempty"`
	Directories []Directory `yaml:"directories,omitempty"`
}

// File is a terminal tree node.
type File struct {
	Name string `yaml:"name"`

	// Content references the content the file is supposed to have. It is
	// not resolved yet, so all files are created empty.
	Content string `yaml:"content,omitempty"`
}

// String returns the name of the file.
func (f File) String() string {
	return f.Name
}

// IsLeaf returns true if the directory has neither files nor
// subdirectories.
func (d *Directory) IsLeaf() bool {
	return len(d.Files) == 0 && len(d.Directories) == 0
}

// ChildNames returns the names of the child directories followed by the
// names of the child files.
func (d *Directory) ChildNames() []string {
	return append(d.ChildDirNames(), d.ChildFileNames()...)
}

// ChildDirNames returns the names of the child directories.
func (d *Directory) ChildDirNames() []string {
	names := make([]string, 0, len(d.Directories))
	for _, dir := range d.Directories {
		names = append(names, dir.Name)
	}

	return names
}

// ChildFileNames returns the names of the child files.
func (d *Directory) ChildFileNames() []string {
	names := make([]string, 0, len(d.Files))
	for _, file := range d.Files {
		names = append(names, file.Name)
	}

	return names
}
