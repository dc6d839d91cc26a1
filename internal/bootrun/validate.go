// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"fmt"
	"os"
)

// Validate checks that the external inputs the spec's pipeline depends on
// are present before any stage runs.
//
// Build artifacts are never inspected, only the externally provisioned
// inputs: the BIOS variant needs the target description and the linker
// script in the project root, the UEFI variant needs the firmware images
// when a launch is requested.
func Validate(spec *Spec) error {
	if err := validateDir(spec.Root); err != nil {
		return err
	}

	if spec.Variant == VariantBIOS {
		files := []string{
			spec.Variant.Target(spec.Root),
			spec.linkerScript(),
		}
		for _, file := range files {
			if err := validateFile(file); err != nil {
				return err
			}
		}

		return nil
	}

	if !spec.BuildOnly {
		files := []string{
			spec.ovmfCode(),
			spec.ovmfVars(),
		}
		for _, file := range files {
			if err := validateFile(file); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateFile(name string) error {
	stat, err := os.Stat(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", name, ErrNotRegularFile)
	}

	return nil
}

func validateDir(name string) error {
	stat, err := os.Stat(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.IsDir() {
		return fmt.Errorf("%s: %w", name, ErrNotDirectory)
	}

	return nil
}
