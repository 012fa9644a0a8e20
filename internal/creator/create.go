// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

import (
	"log/slog"

	"github.com/aibor/projector/internal/tree"
	"github.com/spf13/afero"
)

// CreatePath creates the given entries below outputRoot on the given file
// system.
//
// The target of an entry is outputRoot and the entry's path concatenated
// as-is, so outputRoot must end with a separator unless the entries should
// be created as siblings with a common name prefix.
func CreatePath(fsys afero.Fs, outputRoot string, entries []tree.Entry) error {
	return Materialize(NewFSWriter(fsys, outputRoot), entries)
}

// Materialize writes all entries in order into the given [Writer].
//
// Entries are validated first. If any of them violates the entry contract,
// a [tree.ContractViolationError] is returned before anything is written.
// Entries that exist already are skipped. The first error returned by the
// [Writer] aborts the run.
func Materialize(writer Writer, entries []tree.Entry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err //nolint:wrapcheck
		}
	}

	for _, entry := range entries {
		exists, err := writer.Exists(entry.Path)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if exists {
			slog.Debug("Skip existing entry", slog.String("path", entry.Path))
			continue
		}

		if entry.IsDir() {
			err = writer.WriteDirectory(entry.Path)
		} else {
			err = writer.WriteRegular(entry.Path)
		}

		if err != nil {
			return err //nolint:wrapcheck
		}

		slog.Debug("Created entry",
			slog.String("type", entry.Type.String()),
			slog.String("path", entry.Path),
		)
	}

	return nil
}
