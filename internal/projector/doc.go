// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package projector generates project structures from templates.
//
// Each top-level directory of a template is walked and materialized on its
// own, one after another, followed by the template's top-level files. The
// first failure aborts the generation.
package projector
