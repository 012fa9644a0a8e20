// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/projector/internal/creator"
	"github.com/aibor/projector/internal/tree"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dirEntry(path string) tree.Entry {
	return tree.NewEntry(tree.EntryTypeDirectory, path)
}

func fileEntry(path string) tree.Entry {
	return tree.NewEntry(tree.EntryTypeFile, path)
}

// snapshot returns all paths below root with a type marker and the file
// size.
func snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)

	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		switch {
		case info.IsDir():
			files[filepath.ToSlash(rel)] = "dir"
		case info.Mode().IsRegular():
			files[filepath.ToSlash(rel)] = fmt.Sprintf("file %d", info.Size())
		default:
			files[filepath.ToSlash(rel)] = info.Mode().String()
		}

		return nil
	})
	require.NoError(t, err)

	return files
}

func TestMaterialize(t *testing.T) {
	tests := []struct {
		name        string
		entries     []tree.Entry
		prepare     func(m *creator.MockWriter)
		expectedErr error
	}{
		{
			name: "empty",
		},
		{
			name: "creates all entries in order",
			entries: []tree.Entry{
				dirEntry("proj/empty_dir"),
				fileEntry("proj/readme.md"),
				fileEntry("proj/LICENSE"),
			},
			prepare: func(m *creator.MockWriter) {
				m.On("Exists", mock.Anything).Return(false, nil)
				m.On("WriteDirectory", "proj/empty_dir").Once().Return(nil)
				m.On("WriteRegular", "proj/readme.md").Once().Return(nil)
				m.On("WriteRegular", "proj/LICENSE").Once().Return(nil)
			},
		},
		{
			name: "skips existing",
			entries: []tree.Entry{
				dirEntry("proj/empty_dir"),
				fileEntry("proj/readme.md"),
			},
			prepare: func(m *creator.MockWriter) {
				m.On("Exists", "proj/empty_dir").Once().Return(true, nil)
				m.On("Exists", "proj/readme.md").Once().Return(false, nil)
				m.On("WriteRegular", "proj/readme.md").Once().Return(nil)
			},
		},
		{
			name: "exists fails",
			entries: []tree.Entry{
				fileEntry("proj/readme.md"),
				fileEntry("proj/LICENSE"),
			},
			prepare: func(m *creator.MockWriter) {
				m.On("Exists", "proj/readme.md").Once().Return(false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "write fails",
			entries: []tree.Entry{
				fileEntry("proj/readme.md"),
				dirEntry("proj/empty_dir"),
				fileEntry("proj/LICENSE"),
			},
			prepare: func(m *creator.MockWriter) {
				m.On("Exists", mock.Anything).Return(false, nil)
				m.On("WriteRegular", "proj/readme.md").Once().Return(nil)
				m.On("WriteDirectory", "proj/empty_dir").Once().Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "unknown entry type rejected before writing",
			entries: []tree.Entry{
				fileEntry("proj/readme.md"),
				{Path: "proj/unknown"},
			},
			expectedErr: tree.ErrUnknownEntryType,
		},
		{
			name: "invalid path rejected before writing",
			entries: []tree.Entry{
				fileEntry("proj/readme.md"),
				fileEntry("proj/../escape"),
			},
			expectedErr: &tree.ContractViolationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &creator.MockWriter{}
			if tt.prepare != nil {
				tt.prepare(writer)
			}

			err := creator.Materialize(writer, tt.entries)
			require.ErrorIs(t, err, tt.expectedErr)

			writer.AssertExpectations(t)
		})
	}
}

func TestCreatePath(t *testing.T) {
	tests := []struct {
		name     string
		entries  []tree.Entry
		expected map[string]string
	}{
		{
			name: "nested file",
			entries: []tree.Entry{
				fileEntry("app/src/main.ext"),
			},
			expected: map[string]string{
				".":                "dir",
				"app":              "dir",
				"app/src":          "dir",
				"app/src/main.ext": "file 0",
			},
		},
		{
			name: "leaf directory and file",
			entries: []tree.Entry{
				dirEntry("proj/empty_dir"),
				fileEntry("proj/readme.md"),
			},
			expected: map[string]string{
				".":              "dir",
				"proj":           "dir",
				"proj/empty_dir": "dir",
				"proj/readme.md": "file 0",
			},
		},
		{
			name: "multiple files",
			entries: []tree.Entry{
				fileEntry("td/td_td0/td0_1/test_file.go"),
				dirEntry("td/td_td1/td1_1"),
				dirEntry("td/td_td2/td2_0"),
				dirEntry("td/td_td2/td2_1"),
				fileEntry("td/.gitignore"),
				fileEntry("td/go.mod"),
			},
			expected: map[string]string{
				".":                            "dir",
				"td":                           "dir",
				"td/td_td0":                    "dir",
				"td/td_td0/td0_1":              "dir",
				"td/td_td0/td0_1/test_file.go": "file 0",
				"td/td_td1":                    "dir",
				"td/td_td1/td1_1":              "dir",
				"td/td_td2":                    "dir",
				"td/td_td2/td2_0":              "dir",
				"td/td_td2/td2_1":              "dir",
				"td/.gitignore":                "file 0",
				"td/go.mod":                    "file 0",
			},
		},
		{
			name: "top level file",
			entries: []tree.Entry{
				fileEntry("Makefile"),
			},
			expected: map[string]string{
				".":        "dir",
				"Makefile": "file 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, fsys.MkdirAll("/out", 0o755))

			err := creator.CreatePath(fsys, "/out/", tt.entries)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, snapshot(t, fsys, "/out"))
		})
	}
}

// A historic variant returned after the first created file. All file
// entries must be created.
func TestCreatePath_CreatesEveryFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	entries := []tree.Entry{
		fileEntry("proj/a.txt"),
		fileEntry("proj/b.txt"),
		fileEntry("proj/sub/c.txt"),
	}

	err := creator.CreatePath(fsys, "/out/", entries)
	require.NoError(t, err)

	for _, entry := range entries {
		exists, err := afero.Exists(fsys, "/out/"+entry.Path)
		require.NoError(t, err)
		assert.True(t, exists, entry.Path)
	}
}

func TestCreatePath_Idempotent(t *testing.T) {
	root := t.TempDir() + string(filepath.Separator)
	fsys := afero.NewOsFs()

	entries := []tree.Entry{
		fileEntry("app/src/main.ext"),
		dirEntry("app/empty"),
	}

	require.NoError(t, creator.CreatePath(fsys, root, entries))

	first := snapshot(t, fsys, root)

	require.NoError(t, creator.CreatePath(fsys, root, entries))

	assert.Equal(t, first, snapshot(t, fsys, root))
	assert.Equal(t, map[string]string{
		".":                "dir",
		"app":              "dir",
		"app/src":          "dir",
		"app/src/main.ext": "file 0",
		"app/empty":        "dir",
	}, first)
}

func TestCreatePath_ExistingFileIsNotTouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/out/proj/readme.md", []byte("keep"), 0o600))

	err := creator.CreatePath(fsys, "/out/", []tree.Entry{fileEntry("proj/readme.md")})
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, "/out/proj/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

// Existing objects of the wrong type are skipped like any other existing
// object.
func TestCreatePath_TypeConflictIsSkipped(t *testing.T) {
	t.Run("file where directory expected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/out/proj/dir", nil, 0o644))

		err := creator.CreatePath(fsys, "/out/", []tree.Entry{dirEntry("proj/dir")})
		require.NoError(t, err)

		info, err := fsys.Stat("/out/proj/dir")
		require.NoError(t, err)
		assert.True(t, info.Mode().IsRegular())
	})

	t.Run("directory where file expected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/out/proj/file", 0o755))

		err := creator.CreatePath(fsys, "/out/", []tree.Entry{fileEntry("proj/file")})
		require.NoError(t, err)

		info, err := fsys.Stat("/out/proj/file")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestCreatePath_FailsFast(t *testing.T) {
	root := t.TempDir()
	fsys := afero.NewOsFs()

	// A regular file blocks the creation of the directory "proj/blocked".
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "proj"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "proj", "blocked"), nil, 0o644))

	entries := []tree.Entry{
		fileEntry("proj/first.txt"),
		fileEntry("proj/blocked/inner.txt"),
		fileEntry("proj/last.txt"),
	}

	err := creator.CreatePath(fsys, root+string(filepath.Separator), entries)
	require.ErrorIs(t, err, &creator.IOError{})

	var ioErr *creator.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, ioErr.Path, "blocked")

	exists, err := afero.Exists(fsys, filepath.Join(root, "proj", "first.txt"))
	require.NoError(t, err)
	assert.True(t, exists, "entries before the failure are kept")

	exists, err = afero.Exists(fsys, filepath.Join(root, "proj", "last.txt"))
	require.NoError(t, err)
	assert.False(t, exists, "entries after the failure are not created")
}

func TestCreatePath_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o500))
	t.Cleanup(func() {
		_ = os.Chmod(root, 0o700)
	})

	err := creator.CreatePath(
		afero.NewOsFs(),
		root+string(filepath.Separator),
		[]tree.Entry{dirEntry("proj/dir")},
	)
	require.ErrorIs(t, err, &creator.IOError{})
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestCreatePath_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := creator.CreatePath(fsys, "/out/", []tree.Entry{fileEntry("proj/file")})
	require.ErrorIs(t, err, &creator.IOError{})

	var ioErr *creator.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "mkdir", ioErr.Op)
}
