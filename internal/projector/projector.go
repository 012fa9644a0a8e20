// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package projector

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aibor/projector/internal/creator"
	"github.com/aibor/projector/internal/template"
	"github.com/aibor/projector/internal/tree"
	"github.com/spf13/afero"
)

// MaterializeFunc materializes a batch of entries.
type MaterializeFunc func(entries []tree.Entry) error

// ToFS returns a [MaterializeFunc] that creates entries below outputRoot on
// the given file system.
func ToFS(fsys afero.Fs, outputRoot string) MaterializeFunc {
	return func(entries []tree.Entry) error {
		return creator.CreatePath(fsys, outputRoot, entries)
	}
}

// ToWriter returns a [MaterializeFunc] that writes entries into the given
// [creator.Writer].
func ToWriter(writer creator.Writer) MaterializeFunc {
	return func(entries []tree.Entry) error {
		return creator.Materialize(writer, entries)
	}
}

// Generate materializes the given template.
//
// Each top-level directory is walked and materialized separately in the
// order given. Top-level files are materialized last. The first error aborts
// the generation.
func Generate(tmpl *template.Template, materialize MaterializeFunc) error {
	for _, dir := range tmpl.Directories {
		entries := tree.Walk(dir)

		slog.Debug("Materialize directory",
			slog.String("name", dir.Name),
			slog.Int("entries", len(entries)),
		)

		if err := materialize(entries); err != nil {
			return fmt.Errorf("directory %s: %w", dir.Name, err)
		}
	}

	if len(tmpl.Files) == 0 {
		return nil
	}

	entries := tree.WalkFiles(tmpl.Files)

	slog.Debug("Materialize top-level files",
		slog.Int("entries", len(entries)),
	)

	if err := materialize(entries); err != nil {
		return fmt.Errorf("top-level files: %w", err)
	}

	return nil
}

// Plan returns all entries of the template in the order [Generate]
// materializes them.
func Plan(tmpl *template.Template) []tree.Entry {
	var entries []tree.Entry

	for _, dir := range tmpl.Directories {
		entries = append(entries, tree.Walk(dir)...)
	}

	return append(entries, tree.WalkFiles(tmpl.Files)...)
}

// NormalizeRoot appends a trailing separator to the given output root if it
// is missing, so entry paths can be appended as-is.
func NormalizeRoot(root string) string {
	if root == "" {
		return "." + string(os.PathSeparator)
	}

	if strings.HasSuffix(root, string(os.PathSeparator)) || strings.HasSuffix(root, "/") {
		return root
	}

	return root + string(os.PathSeparator)
}
