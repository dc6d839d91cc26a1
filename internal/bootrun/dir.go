// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import "path/filepath"

// BuildDir returns the build output directory for the given variant and
// profile below the project root.
//
// The path is a pure function of its inputs. All stages of a pipeline
// resolve their artifacts against it.
func BuildDir(root string, variant Variant, release bool) string {
	profile := "debug"
	if release {
		profile = "release"
	}

	return filepath.Join(root, "target", variant.targetDir(), profile)
}
