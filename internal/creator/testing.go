// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package creator

import "github.com/stretchr/testify/mock"

var _ Writer = (*MockWriter)(nil)

// MockWriter is a [Writer] for tests.
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockWriter) WriteDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockWriter) WriteRegular(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
