// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun_test

import (
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/aibor/bootrun/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQemuSpecBIOS(t *testing.T) {
	spec := newTestSpec(bootrun.VariantBIOS)

	expected := qemu.CommandSpec{
		Executable: "qemu-system-x86_64",
		Devices: []string{
			"ich9-intel-hda,debug=4",
			"hda-micro",
			"hda-micro",
		},
		Drives: []qemu.Argument{
			qemu.RawDriveArg(
				"/project/target/x86_64-bios-target/debug/bmb_bin",
			),
		},
	}

	assert.Equal(t, expected, bootrun.NewQemuSpec(spec))
}

func TestNewQemuSpecUEFI(t *testing.T) {
	tests := []struct {
		name        string
		noKVM       bool
		expectedKVM bool
	}{
		{
			name:        "with kvm",
			expectedKVM: true,
		},
		{
			name:  "without kvm",
			noKVM: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := newTestSpec(bootrun.VariantUEFI)
			spec.Launch.NoKVM = tt.noKVM
			spec.Launch.OVMFDir = "/usr/share/edk2/ovmf"

			expected := qemu.CommandSpec{
				Executable: "qemu-system-x86_64",
				CPU:        "qemu64",
				NoNetwork:  true,
				KVM:        tt.expectedKVM,
				Drives: []qemu.Argument{
					qemu.PflashCodeDriveArg(
						"/usr/share/edk2/ovmf/OVMF_CODE.fd",
					),
					qemu.PflashVarsDriveArg(
						"/usr/share/edk2/ovmf/OVMF_VARS.fd",
					),
					qemu.FATDriveArg(
						"/project/target/x86_64-unknown-uefi/debug",
					),
				},
			}

			assert.Equal(t, expected, bootrun.NewQemuSpec(spec))
		})
	}
}

// A debug launch must pause the machine at reset and expose the gdb stub,
// for either variant.
func TestNewQemuSpecDebug(t *testing.T) {
	for _, variant := range []bootrun.Variant{
		bootrun.VariantBIOS,
		bootrun.VariantUEFI,
	} {
		t.Run(variant.String(), func(t *testing.T) {
			spec := newTestSpec(variant)
			spec.Debug = true

			cmd, err := qemu.NewCommand(bootrun.NewQemuSpec(spec))
			require.NoError(t, err)

			assert.Contains(t, cmd.Args(), "-S")
			assert.Contains(t, cmd.Args(), "-s")
		})
	}
}

func TestNewQemuSpecSerialLog(t *testing.T) {
	spec := newTestSpec(bootrun.VariantUEFI)
	spec.Launch.SerialLog = "/tmp/serial.log"

	cmd, err := qemu.NewCommand(bootrun.NewQemuSpec(spec))
	require.NoError(t, err)

	assert.Contains(t, cmd.Args(), "-serial")
	assert.Contains(t, cmd.Args(), "file:/dev/fd/3")
}
