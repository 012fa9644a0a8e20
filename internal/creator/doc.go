// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package creator materializes resolved tree entries.
//
// [CreatePath] creates the entries as directories and empty files below an
// output root on an [afero.Fs]. [Materialize] does the same for any [Writer],
// for example a [CPIOWriter] that writes the entries into an archive.
//
// Materializing is idempotent: entries that already exist are skipped without
// looking at their type or content. The first error aborts the run. Entries
// created up to that point are left in place.
package creator
