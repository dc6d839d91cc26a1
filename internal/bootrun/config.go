// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"path/filepath"

	"github.com/aibor/bootrun/internal/qemu"
)

const (
	cargoDefault   = "cargo"
	objcopyDefault = "objcopy"
	qemuDefault    = "qemu-system-x86_64"
	ovmfDirDefault = "/usr/share/edk2/ovmf"

	// Cargo workspace package containing the bootloader.
	packageDefault = "bootloader"
)

// Artifact and input file names, fixed by the bootloader project's build
// contract.
const (
	binaryName       = "bootloader"
	symbolsName      = "bmb_sym"
	rawImageName     = "bmb_bin"
	efiBinaryName    = "bootloader.efi"
	linkerScriptName = "linker.ld"
	ovmfCodeName     = "OVMF_CODE.fd"
	ovmfVarsName     = "OVMF_VARS.fd"
)

// Build holds the toolchain binaries the build stages invoke.
type Build struct {
	// Cargo binary to compile with.
	Cargo string

	// Objcopy binary to extract artifacts with.
	Objcopy string

	// Cargo package to build.
	Package string
}

// Launch holds the emulator parameters of the launch stage.
type Launch struct {
	// Path to the qemu-system binary.
	Executable string

	// Directory the OVMF firmware images are provisioned in.
	OVMFDir string

	// Disable KVM hardware acceleration for the UEFI variant.
	NoKVM bool

	// Host file an additional serial console is written to. Empty disables
	// the console.
	SerialLog string
}

// Spec is the resolved set of run parameters.
//
// It is created once per invocation from the command line arguments and
// passed into every stage. No stage reads ambient global state.
type Spec struct {
	// Boot protocol variant to build and launch for.
	Variant Variant

	// Use the optimized build profile and the release build directory.
	Release bool

	// Start the emulator paused at reset with the gdb stub enabled.
	Debug bool

	// Skip the launch stage entirely.
	BuildOnly bool

	// Project root directory all relative paths resolve against.
	Root string

	// Path a cpio archive of the artifact set is written to after a
	// successful build. Empty disables bundling.
	Bundle string

	Build  Build
	Launch Launch
}

// New returns a [Spec] with defaults resolved for the current host.
func New() Spec {
	return Spec{
		Variant: VariantUEFI,
		Root:    ".",
		Build: Build{
			Cargo:   cargoDefault,
			Objcopy: objcopyDefault,
			Package: packageDefault,
		},
		Launch: Launch{
			Executable: qemuDefault,
			OVMFDir:    ovmfDirDefault,
			NoKVM:      !qemu.KVMAvailable(),
		},
	}
}

// BuildDir returns the build output directory the spec's stages operate in.
func (s *Spec) BuildDir() string {
	return BuildDir(s.Root, s.Variant, s.Release)
}

// artifacts returns the names of the variant's artifact set relative to the
// build directory.
func (s *Spec) artifacts() []string {
	if s.Variant == VariantBIOS {
		return []string{binaryName, symbolsName, rawImageName}
	}

	return []string{efiBinaryName}
}

func (s *Spec) linkerScript() string {
	return filepath.Join(s.Root, linkerScriptName)
}

func (s *Spec) ovmfCode() string {
	return filepath.Join(s.Launch.OVMFDir, ovmfCodeName)
}

func (s *Spec) ovmfVars() string {
	return filepath.Join(s.Launch.OVMFDir, ovmfVarsName)
}
