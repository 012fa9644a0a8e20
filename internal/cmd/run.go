// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aibor/projector/internal/creator"
	"github.com/aibor/projector/internal/projector"
	"github.com/aibor/projector/internal/template"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
)

const (
	localConfigFile = ".projector-args"
	gzipSuffix      = ".gz"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(fsys afero.Fs, args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(fsys, localConfigFile, args)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func run(fsys afero.Fs, flags *flags, cfg IO) error {
	tmpl, err := template.ReadFile(fsys, flags.templatePath.String())
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Read template",
		slog.String("path", flags.templatePath.String()),
		slog.Int("directories", len(tmpl.Directories)),
		slog.Int("files", len(tmpl.Files)),
	)

	switch {
	case flags.dryRun:
		for _, entry := range projector.Plan(tmpl) {
			fmt.Fprintln(cfg.Stdout, entry.String())
		}

		return nil
	case flags.archivePath != "":
		err := writeArchive(fsys, flags.archivePath.String(), tmpl)
		if err != nil {
			return err
		}

		fmt.Fprintf(cfg.Stdout, "new project archive was created in: %s\n",
			flags.archivePath)

		return nil
	default:
		root := projector.NormalizeRoot(flags.outDir)

		err := projector.Generate(tmpl, projector.ToFS(fsys, root))
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		fmt.Fprintf(cfg.Stdout, "new project template was created in: %s\n",
			flags.outDir)

		return nil
	}
}

// writeArchive writes the complete template as CPIO archive into a new file
// with the given path. If the path has the ".gz" suffix, the archive is gzip
// compressed. The file is removed again on failure.
func writeArchive(fsys afero.Fs, path string, tmpl *template.Template) error {
	file, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	var (
		sink    io.Writer = file
		closers []io.Closer
	)

	if strings.HasSuffix(path, gzipSuffix) {
		gzipWriter := gzip.NewWriter(file)
		sink = gzipWriter
		closers = append(closers, gzipWriter)
	}

	writer := creator.NewCPIOWriter(sink)
	closers = append([]io.Closer{writer}, append(closers, file)...)

	err = projector.Generate(tmpl, projector.ToWriter(writer))

	for _, closer := range closers {
		err = errors.Join(err, closer.Close())
	}

	if err != nil {
		_ = fsys.Remove(path)

		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	var ioErr *creator.IOError
	if errors.As(err, &ioErr) {
		slog.Error("Failed to create project",
			slog.String("op", ioErr.Op),
			slog.String("path", ioErr.Path),
		)
	}

	slog.Error(err.Error())

	return -1
}

func execute(fsys afero.Fs, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseFlags(fsys, args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(fsys, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

// Run is the main entry point for the CLI command.
func Run(args []string, cfg IO) int {
	return execute(afero.NewOsFs(), args, cfg)
}
