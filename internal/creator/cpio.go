// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

import (
	"io"
	"path"
	"strings"

	"github.com/cavaliergopher/cpio"
)

const (
	numDirLinks = 2

	archiveDirMode  = cpio.TypeDir | 0o755
	archiveFileMode = cpio.TypeReg | 0o644
)

var _ Writer = (*CPIOWriter)(nil)

// CPIOWriter implements [Writer] for a newc CPIO archive.
//
// Archives are append-only, so the writer keeps track of all paths it has
// written. Missing parent directories are added as directory entries before
// the entry itself.
type CPIOWriter struct {
	cpioWriter *cpio.Writer
	written    map[string]struct{}
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{
		cpioWriter: cpio.NewWriter(w),
		written:    make(map[string]struct{}),
	}
}

// Close closes the [CPIOWriter] and writes the archive trailer. Flush is
// called by the underlying closer.
func (w *CPIOWriter) Close() error {
	if err := w.cpioWriter.Close(); err != nil {
		return &IOError{Op: "close", Path: "archive", Err: err}
	}

	return nil
}

// Flush writes the data to the underlying [io.Writer].
func (w *CPIOWriter) Flush() error {
	if err := w.cpioWriter.Flush(); err != nil {
		return &IOError{Op: "flush", Path: "archive", Err: err}
	}

	return nil
}

// Exists returns true if the path has been written into the archive already,
// either as entry or as implicitly added parent directory.
func (w *CPIOWriter) Exists(path string) (bool, error) {
	_, exists := w.written[path]
	return exists, nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *CPIOWriter) WriteDirectory(path string) error {
	if err := w.writeParents(path); err != nil {
		return err
	}

	return w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  archiveDirMode,
		Links: numDirLinks,
	})
}

// WriteRegular adds an empty regular file for the given path to the archive.
func (w *CPIOWriter) WriteRegular(path string) error {
	if err := w.writeParents(path); err != nil {
		return err
	}

	return w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  archiveFileMode,
		Links: 1,
	})
}

func (w *CPIOWriter) writeParents(name string) error {
	dir := path.Dir(name)
	if dir == "." {
		return nil
	}

	var parent string

	for segment := range strings.SplitSeq(dir, "/") {
		parent = path.Join(parent, segment)

		if _, exists := w.written[parent]; exists {
			continue
		}

		err := w.writeHeader(&cpio.Header{
			Name:  parent,
			Mode:  archiveDirMode,
			Links: numDirLinks,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return &IOError{Op: "write header", Path: hdr.Name, Err: err}
	}

	w.written[hdr.Name] = struct{}{}

	return nil
}
