// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package template

import "errors"

// ErrEmptyTemplate is returned if a template has no entries at all.
var ErrEmptyTemplate = errors.New("template is empty")
