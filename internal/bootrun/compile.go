// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import "os"

// CompileCommand compiles the cargo invocation for the spec's variant and
// profile.
//
// The bootloader is freestanding, so core and compiler_builtins are built
// from source for the custom targets. The BIOS variant additionally enables
// the "bios" feature and routes the fixed linker script in via RUSTFLAGS;
// all other environment is inherited unchanged.
func CompileCommand(spec *Spec) *ToolCommand {
	args := []string{
		"build",
		"-p", spec.Build.Package,
		"--target", spec.Variant.Target(spec.Root),
		"-Zbuild-std=core,compiler_builtins",
		"-Zbuild-std-features=compiler-builtins-mem",
	}

	if spec.Variant == VariantBIOS {
		args = append(args, "--features", "bios")
	}

	if spec.Release {
		args = append(args, "--release")
	}

	cmd := &ToolCommand{
		Path: spec.Build.Cargo,
		Args: args,
	}

	if spec.Variant == VariantBIOS {
		rustflags := "RUSTFLAGS=-C link-args=" + spec.linkerScript()
		cmd.Env = append(os.Environ(), rustflags)
	}

	return cmd
}
