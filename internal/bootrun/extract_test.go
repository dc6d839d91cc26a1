// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun_test

import (
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/stretchr/testify/assert"
)

func TestSymbolsCommand(t *testing.T) {
	spec := newTestSpec(bootrun.VariantBIOS)

	cmd := bootrun.SymbolsCommand(spec)

	assert.Equal(t, "objcopy", cmd.Path)
	assert.Equal(t, []string{
		"--only-keep-debug",
		"/project/target/x86_64-bios-target/debug/bootloader",
		"/project/target/x86_64-bios-target/debug/bmb_sym",
	}, cmd.Args)
	assert.Nil(t, cmd.Env)
}

func TestImageCommand(t *testing.T) {
	spec := newTestSpec(bootrun.VariantBIOS)
	spec.Release = true

	cmd := bootrun.ImageCommand(spec)

	assert.Equal(t, "objcopy", cmd.Path)
	assert.Equal(t, []string{
		"-O", "binary",
		"/project/target/x86_64-bios-target/release/bootloader",
		"/project/target/x86_64-bios-target/release/bmb_bin",
	}, cmd.Args)
	assert.Nil(t, cmd.Env)
}
