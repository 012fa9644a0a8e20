// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	defaultDirMode  fs.FileMode = 0o755
	defaultFileMode fs.FileMode = 0o644
)

var _ Writer = (*FSWriter)(nil)

// FSWriter implements [Writer] for an [afero.Fs].
//
// Entry paths are appended to the root as plain strings and converted to the
// host's separator afterwards. Regular files are created empty and synced
// before they are closed.
type FSWriter struct {
	fsys afero.Fs
	root string

	// DirMode is used for new directories, including missing parents.
	DirMode fs.FileMode

	// FileMode is used for new regular files.
	FileMode fs.FileMode
}

// NewFSWriter creates a new [FSWriter] that creates entries below the given
// root.
func NewFSWriter(fsys afero.Fs, root string) *FSWriter {
	return &FSWriter{
		fsys:     fsys,
		root:     root,
		DirMode:  defaultDirMode,
		FileMode: defaultFileMode,
	}
}

// Target returns the file system path for the given entry path.
func (w *FSWriter) Target(path string) string {
	return filepath.FromSlash(w.root + path)
}

// Exists returns true if any kind of file exists for the given entry path.
// Symbolic links are not followed if the file system supports it.
func (w *FSWriter) Exists(path string) (bool, error) {
	target := w.Target(path)

	var err error
	if lstater, ok := w.fsys.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(target)
	} else {
		_, err = w.fsys.Stat(target)
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &IOError{Op: "stat", Path: target, Err: err}
	}
}

// WriteDirectory creates the directory for the given entry path along with
// any missing parents.
func (w *FSWriter) WriteDirectory(path string) error {
	return w.mkdirAll(w.Target(path))
}

// WriteRegular creates an empty regular file for the given entry path. Any
// missing parent directories are created first. The file must not exist yet.
func (w *FSWriter) WriteRegular(path string) error {
	target := w.Target(path)

	if err := w.mkdirAll(filepath.Dir(target)); err != nil {
		return err
	}

	file, err := w.fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, w.FileMode)
	if err != nil {
		return &IOError{Op: "create", Path: target, Err: err}
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return &IOError{Op: "sync", Path: target, Err: err}
	}

	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: target, Err: err}
	}

	return nil
}

func (w *FSWriter) mkdirAll(target string) error {
	if err := w.fsys.MkdirAll(target, w.DirMode); err != nil {
		return &IOError{Op: "mkdir", Path: target, Err: err}
	}

	return nil
}
