// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import "path/filepath"

// SymbolsCommand compiles the objcopy invocation that extracts the debug
// information of the compiled bootloader into a separate symbol file.
func SymbolsCommand(spec *Spec) *ToolCommand {
	dir := spec.BuildDir()

	return &ToolCommand{
		Path: spec.Build.Objcopy,
		Args: []string{
			"--only-keep-debug",
			filepath.Join(dir, binaryName),
			filepath.Join(dir, symbolsName),
		},
	}
}

// ImageCommand compiles the objcopy invocation that converts the compiled
// bootloader into a flat raw image, stripped of all object format metadata,
// executable directly from a storage medium.
func ImageCommand(spec *Spec) *ToolCommand {
	dir := spec.BuildDir()

	return &ToolCommand{
		Path: spec.Build.Objcopy,
		Args: []string{
			"-O", "binary",
			filepath.Join(dir, binaryName),
			filepath.Join(dir, rawImageName),
		},
	}
}
