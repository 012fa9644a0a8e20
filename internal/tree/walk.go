// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tree

import (
	"iter"
	"slices"
)

// Separator is the separator used for joining [Entry] paths, independent of
// the host platform.
const Separator = "/"

// walkFrame is a directory pending on the walk stack.
type walkFrame struct {
	dir  *Directory
	path string
	next int
}

// Walk resolves all leaves of the given root directory into entries.
//
// See [Directory.Entries] for the order of the entries.
func Walk(root Directory) []Entry {
	return slices.Collect(root.Entries())
}

// WalkFiles resolves the given files into entries without any parent
// directory. It is used for files at the top level of a template.
func WalkFiles(files []File) []Entry {
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		entries = append(entries, NewEntry(EntryTypeFile, file.Name))
	}

	return entries
}

// Entries returns an iterator over all leaves of the directory.
//
// If the directory itself is a leaf, a single directory entry with just its
// name is yielded. Otherwise the leaves are yielded depth-first: all entries
// of the subdirectories in their given order, followed by the directory's own
// files in their given order. Each path is prefixed with the names of all
// directories from the directory down to the leaf.
//
// The walk does not recurse, so the stack usage is constant regardless of
// the depth of the tree.
func (d *Directory) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if d.IsLeaf() {
			yield(NewEntry(EntryTypeDirectory, d.Name))
			return
		}

		stack := []*walkFrame{{dir: d, path: d.Name}}

		for len(stack) > 0 {
			frame := stack[len(stack)-1]

			if frame.next < len(frame.dir.Directories) {
				child := &frame.dir.Directories[frame.next]
				frame.next++

				path := frame.path + Separator + child.Name

				if child.IsLeaf() {
					if !yield(NewEntry(EntryTypeDirectory, path)) {
						return
					}

					continue
				}

				stack = append(stack, &walkFrame{dir: child, path: path})

				continue
			}

			// All subdirectories are done, so the own files follow.
			for _, file := range frame.dir.Files {
				path := frame.path + Separator + file.Name
				if !yield(NewEntry(EntryTypeFile, path)) {
					return
				}
			}

			stack = stack[:len(stack)-1]
		}
	}
}
