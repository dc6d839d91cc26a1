// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bundle writes a build's artifact set into a cpio archive for
// hand-off to CI artifact storage.
package bundle
