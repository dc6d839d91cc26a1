// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"path/filepath"

	"github.com/aibor/bootrun/internal/qemu"
)

// NewQemuSpec assembles the emulator invocation for the spec's variant.
//
// The BIOS variant boots the flat raw image as a raw disk and attaches the
// HDA audio devices the bootloader's sound driver is written against. The
// UEFI variant boots OVMF firmware from a pflash pair and exposes the build
// directory as a FAT formatted removable medium, with networking disabled
// and a generic CPU model.
func NewQemuSpec(spec *Spec) qemu.CommandSpec {
	qemuSpec := qemu.CommandSpec{
		Executable: spec.Launch.Executable,
		Debug:      spec.Debug,
		SerialLog:  spec.Launch.SerialLog,
	}

	switch spec.Variant {
	case VariantBIOS:
		qemuSpec.Devices = []string{
			"ich9-intel-hda,debug=4",
			"hda-micro",
			"hda-micro",
		}
		qemuSpec.Drives = []qemu.Argument{
			qemu.RawDriveArg(filepath.Join(spec.BuildDir(), rawImageName)),
		}
	case VariantUEFI:
		qemuSpec.CPU = "qemu64"
		qemuSpec.NoNetwork = true
		qemuSpec.KVM = !spec.Launch.NoKVM
		qemuSpec.Drives = []qemu.Argument{
			qemu.PflashCodeDriveArg(spec.ovmfCode()),
			qemu.PflashVarsDriveArg(spec.ovmfVars()),
			qemu.FATDriveArg(spec.BuildDir()),
		}
	}

	return qemuSpec
}
