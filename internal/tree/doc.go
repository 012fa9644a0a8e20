// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package tree provides the in-memory model of a project template's directory
// tree and flattens it into an ordered list of resolved entries.
//
// A [Directory] owns its child directories and files. [Walk] resolves every
// leaf of a directory tree into an [Entry] that carries the slash-separated
// path from the walked directory down to the leaf. Only leaves are resolved:
// files and directories without any children. Intermediate directories are
// implied by the paths and must be created by whoever consumes the entries.
package tree
