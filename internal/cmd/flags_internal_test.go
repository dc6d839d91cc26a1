// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"io"
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		assert      func(*testing.T, *flags)
		expectedErr error
	}{
		{
			name: "no flags selects uefi defaults",
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, bootrun.VariantUEFI, f.spec.Variant)
				assert.False(t, f.spec.Release)
				assert.False(t, f.spec.Debug)
				assert.False(t, f.spec.BuildOnly)
				assert.Equal(t, ".", f.spec.Root)
				assert.Equal(t, "cargo", f.spec.Build.Cargo)
				assert.Equal(t, "objcopy", f.spec.Build.Objcopy)
				assert.Equal(t, "qemu-system-x86_64", f.spec.Launch.Executable)
				assert.Equal(t, "/usr/share/edk2/ovmf", f.spec.Launch.OVMFDir)
			},
		},
		{
			name: "bios selects the bios variant",
			args: []string{"-bios"},
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, bootrun.VariantBIOS, f.spec.Variant)
			},
		},
		{
			name: "debug",
			args: []string{"-debug"},
			assert: func(t *testing.T, f *flags) {
				assert.True(t, f.spec.Debug)
			},
		},
		{
			name: "build only",
			args: []string{"-build-only"},
			assert: func(t *testing.T, f *flags) {
				assert.True(t, f.spec.BuildOnly)
			},
		},
		{
			name: "release",
			args: []string{"-release"},
			assert: func(t *testing.T, f *flags) {
				assert.True(t, f.spec.Release)
			},
		},
		{
			name: "double dash flags",
			args: []string{"--bios", "--build-only", "--release", "--debug"},
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, bootrun.VariantBIOS, f.spec.Variant)
				assert.True(t, f.spec.BuildOnly)
				assert.True(t, f.spec.Release)
				assert.True(t, f.spec.Debug)
			},
		},
		{
			name: "tool overrides",
			args: []string{
				"-cargo-bin=/opt/cargo",
				"-objcopy-bin=/opt/objcopy",
				"-qemu-bin=/opt/qemu",
				"-root=/project",
				"-ovmf=/opt/ovmf",
			},
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, "/opt/cargo", f.spec.Build.Cargo)
				assert.Equal(t, "/opt/objcopy", f.spec.Build.Objcopy)
				assert.Equal(t, "/opt/qemu", f.spec.Launch.Executable)
				assert.Equal(t, "/project", f.spec.Root)
				assert.Equal(t, "/opt/ovmf", f.spec.Launch.OVMFDir)
			},
		},
		{
			name: "serial log and bundle",
			args: []string{"-serial-log=serial.log", "-bundle=a.cpio"},
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, "serial.log", f.spec.Launch.SerialLog)
				assert.Equal(t, "a.cpio", f.spec.Bundle)
			},
		},
		{
			name: "verbose",
			args: []string{"-verbose"},
			assert: func(t *testing.T, f *flags) {
				assert.True(t, f.verbose)
			},
		},
		{
			name:        "version requested",
			args:        []string{"-version"},
			expectedErr: flag.ErrHelp,
		},
		{
			name:        "unknown flag",
			args:        []string{"-initrd=some.img"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unexpected positional arguments",
			args:        []string{"bootloader"},
			expectedErr: &ParseArgsError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlags(io.Discard)

			err := flags.parseArgs(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.assert != nil {
				tt.assert(t, flags)
			}
		})
	}
}
