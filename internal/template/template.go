// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package template reads project templates. A template is a YAML document
// with a list of top-level directories and an optional list of top-level
// files:
//
//	directories:
//	  - name: app
//	    directories:
//	      - name: src
//	        files:
//	          - name: main.go
//	            content: main.tmpl
//	  - name: empty
//	files:
//	  - name: README.md
//
// Unknown keys are ignored.
package template

import (
	"errors"
	"fmt"
	"io"

	"github.com/aibor/projector/internal/tree"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Template is a parsed project template.
type Template struct {
	Directories []tree.Directory `yaml:"directories"`
	Files       []tree.File      `yaml:"files,omitempty"`
}

// Validate checks all directory and file names of the template.
func (t *Template) Validate() error {
	for idx := range t.Directories {
		if err := t.Directories[idx].Validate(); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return tree.ValidateFiles("", t.Files) //nolint:wrapcheck
}

// IsEmpty returns true if the template has neither directories nor files.
func (t *Template) IsEmpty() bool {
	return len(t.Directories) == 0 && len(t.Files) == 0
}

// Parse decodes a template from the given reader and validates it.
func Parse(r io.Reader) (*Template, error) {
	var tmpl Template

	err := yaml.NewDecoder(r).Decode(&tmpl)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTemplate
		}

		return nil, fmt.Errorf("decode: %w", err)
	}

	if tmpl.IsEmpty() {
		return nil, ErrEmptyTemplate
	}

	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return &tmpl, nil
}

// ReadFile reads and parses the template file with the given path.
func ReadFile(fsys afero.Fs, path string) (*Template, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer file.Close()

	tmpl, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}

	return tmpl, nil
}
