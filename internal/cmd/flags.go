// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/bootrun/internal/bootrun"
)

const (
	name = "bootrun"

	localConfigFile = ".bootrun-args"

	usageMessage = `Usage of 'bootrun':
    bootrun [flags...]

Build the bootloader image and boot it in QEMU:
	bootrun -bios
	bootrun -release -build-only

All bootrun flags can also be provided via environment variable ` +
		envArgsVar + `:
	BOOTRUN_ARGS="-ovmf=/usr/share/OVMF" bootrun

All bootrun flags can also be provided via file ./` + localConfigFile +
		`, with one argument per line.
`
)

// Set on build.
var version = "dev"

type flags struct {
	spec    bootrun.Spec
	flagSet *flag.FlagSet

	bios    bool
	version bool
	verbose bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		spec: bootrun.New(),
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.BoolVar(
		&f.bios,
		"bios",
		f.bios,
		"build and launch the legacy BIOS variant (default is UEFI)",
	)

	flagSet.BoolVar(
		&f.spec.Debug,
		"debug",
		f.spec.Debug,
		"launch the emulator paused at reset with the gdb stub enabled",
	)

	flagSet.BoolVar(
		&f.spec.BuildOnly,
		"build-only",
		f.spec.BuildOnly,
		"build the image but do not launch the emulator",
	)

	flagSet.BoolVar(
		&f.spec.Release,
		"release",
		f.spec.Release,
		"use the optimized build profile and release build directory",
	)

	flagSet.StringVar(
		&f.spec.Root,
		"root",
		f.spec.Root,
		"project root directory",
	)

	flagSet.StringVar(
		&f.spec.Build.Cargo,
		"cargo-bin",
		f.spec.Build.Cargo,
		"cargo binary to use",
	)

	flagSet.StringVar(
		&f.spec.Build.Objcopy,
		"objcopy-bin",
		f.spec.Build.Objcopy,
		"objcopy binary to use",
	)

	flagSet.StringVar(
		&f.spec.Launch.Executable,
		"qemu-bin",
		f.spec.Launch.Executable,
		"QEMU binary to use",
	)

	flagSet.StringVar(
		&f.spec.Launch.OVMFDir,
		"ovmf",
		f.spec.Launch.OVMFDir,
		"directory containing the OVMF_CODE.fd and OVMF_VARS.fd firmware "+
			"images (UEFI variant only)",
	)

	flagSet.BoolVar(
		&f.spec.Launch.NoKVM,
		"nokvm",
		f.spec.Launch.NoKVM,
		"disable hardware acceleration (default is enabled if present, "+
			"UEFI variant only)",
	)

	flagSet.StringVar(
		&f.spec.Launch.SerialLog,
		"serial-log",
		f.spec.Launch.SerialLog,
		"write an additional serial console to this file",
	)

	flagSet.StringVar(
		&f.spec.Bundle,
		"bundle",
		f.spec.Bundle,
		"write the artifact set to this cpio archive after a successful "+
			"build",
	)

	flagSet.BoolVar(
		&f.verbose,
		"verbose",
		f.verbose,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) parseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non error
	// exit code.
	if f.version {
		err := f.printVersionInformation()
		if err != nil {
			return err
		}

		return &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	// Absence of the bios flag selects the UEFI variant. Exactly one of the
	// two pipelines runs per invocation.
	if f.bios {
		f.spec.Variant = bootrun.VariantBIOS
	}

	if f.flagSet.NArg() > 0 {
		return f.fail("unexpected positional arguments", nil)
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	f.flagSet.PrintDefaults()
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n\n", name, version)
	fmt.Fprintln(f.flagSet.Output(), buildInfo.String())

	return nil
}
