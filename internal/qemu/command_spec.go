// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "fmt"

// File descriptors 0, 1, 2 are standard in, out, err, so additional files
// attached via [os/exec.Cmd.ExtraFiles] start at 3.
const minAdditionalFileDescriptor = 3

// CommandSpec defines the parameters for a [Command].
//
// The command runs interactively with QEMU's default display, so none of the
// output suppressing arguments usual for headless runs are set.
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// CPU model to use. Empty leaves QEMU's default in place.
	CPU string

	// Drives attached to the machine, in order. Use [RawDriveArg],
	// [PflashCodeDriveArg], [PflashVarsDriveArg] and [FATDriveArg] to
	// construct them.
	Drives []Argument

	// Additional devices, passed verbatim as "-device" values.
	Devices []string

	// Disable all networking in the guest.
	NoNetwork bool

	// Enable KVM hardware acceleration.
	KVM bool

	// Start the machine paused at reset with the gdb stub listening on the
	// default port.
	Debug bool

	// Host file an additional serial console is written to. Empty disables
	// the console.
	SerialLog string

	// ExtraArgs are extra arguments that are passed to the QEMU command.
	// They must not interfere with the essential arguments set by the
	// command itself or an error will be returned by [NewCommand].
	ExtraArgs []Argument
}

// RawDriveArg returns the drive argument attaching the given file as a raw
// format disk.
func RawDriveArg(file string) Argument {
	return RepeatableArg("drive", "file="+file, "format=raw")
}

// PflashCodeDriveArg returns the drive argument attaching the given firmware
// code image as read-only pflash unit 0.
func PflashCodeDriveArg(file string) Argument {
	return RepeatableArg(
		"drive",
		"if=pflash", "format=raw", "unit=0", "file="+file, "readonly=on",
	)
}

// PflashVarsDriveArg returns the drive argument attaching the given firmware
// variable store as writable pflash unit 1.
func PflashVarsDriveArg(file string) Argument {
	return RepeatableArg(
		"drive",
		"if=pflash", "format=raw", "unit=1", "file="+file,
	)
}

// FATDriveArg returns the drive argument exposing the given host directory
// to the guest as a writable FAT formatted disk.
func FATDriveArg(dir string) Argument {
	return RepeatableArg("drive", "format=raw", "file=fat:rw:"+dir)
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() []Argument {
	var args []Argument

	if s.CPU != "" {
		args = append(args, UniqueArg("cpu", s.CPU))
	}

	if s.KVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	for _, device := range s.Devices {
		args = append(args, RepeatableArg("device", device))
	}

	args = append(args, s.Drives...)

	if s.NoNetwork {
		args = append(args, UniqueArg("net", "none"))
	}

	// The serial console is backed by a file descriptor provided via
	// [os/exec.Cmd.ExtraFiles].
	if s.SerialLog != "" {
		path := fdPath(minAdditionalFileDescriptor)
		args = append(args, RepeatableArg("serial", "file:"+path))
	}

	if s.Debug {
		args = append(args,
			// Freeze the CPU at startup.
			UniqueArg("S"),
			// gdb stub on the default port.
			UniqueArg("s"),
		)
	}

	args = append(args, s.ExtraArgs...)

	return args
}

func fdPath(fd int) string {
	return fmt.Sprintf("/dev/fd/%d", fd)
}
