// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

const (
	name = "projector"

	outDirDefault = "/tmp/project_template/"

	usageMessage = `Usage of 'projector':
    projector [flags...] -t_file template.yaml

Creates the directories and empty files described by the template below the
output directory. Existing files and directories are left untouched, so it is
safe to run it again for the same output directory.

Template format:
	directories:
	  - name: app
	    directories:
	      - name: src
	        files:
	          - name: main.go
	files:
	  - name: README.md

All projector flags can also be provided via environment variable
PROJECTOR_ARGS:
	PROJECTOR_ARGS="-o ./out -debug" projector -f template.yaml

All projector flags can also be provided via file ./.projector-args, with one
argument per line.
`
)

type flags struct {
	templatePath FilePath
	archivePath  FilePath
	outDir       string
	flagSet      *flag.FlagSet

	dryRun  bool
	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		outDir: outDirDefault,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	if positionalArgs := f.flagSet.Args(); len(positionalArgs) > 0 {
		return f.fail(fmt.Sprintf("unexpected arguments: %q", positionalArgs), nil)
	}

	if f.templatePath == "" {
		return f.fail("no template file given (use -t_file)", nil)
	}

	if f.outDir == "" {
		return f.fail("output directory must not be empty", nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	for _, flagName := range []string{"t_file", "f"} {
		flagSet.Var(
			&f.templatePath,
			flagName,
			"path to the template file (required)",
		)
	}

	for _, flagName := range []string{"out_dir", "o"} {
		flagSet.StringVar(
			&f.outDir,
			flagName,
			f.outDir,
			"directory the project is created in",
		)
	}

	flagSet.Var(
		&f.archivePath,
		"archive",
		"write the project as CPIO archive into this file instead of "+
			"creating it in the output directory, gzip compressed if the "+
			"file name ends with \".gz\"",
	)

	flagSet.BoolVar(
		&f.dryRun,
		"dry",
		f.dryRun,
		"only print the entries that would be created",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
