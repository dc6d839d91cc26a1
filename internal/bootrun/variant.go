// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import "path/filepath"

// Variant is the boot protocol a pipeline builds and launches for.
type Variant string

// Supported boot variants.
const (
	// VariantBIOS produces a flat raw image loaded by legacy firmware from
	// a fixed disk offset.
	VariantBIOS Variant = "bios"
	// VariantUEFI produces a standard executable placed on a removable
	// media filesystem, loaded by UEFI firmware.
	VariantUEFI Variant = "uefi"
)

// String implements [fmt.Stringer].
func (v Variant) String() string {
	return string(v)
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	variant := Variant(text)

	switch variant {
	case VariantBIOS, VariantUEFI:
		*v = variant
	default:
		return ErrVariantInvalid
	}

	return nil
}

// Target returns the cargo build target for the variant.
//
// The BIOS variant builds with a custom target description file located in
// the project root. The UEFI variant uses the well-known UEFI target triple.
func (v Variant) Target(root string) string {
	if v == VariantBIOS {
		return filepath.Join(root, "x86_64-bios-target.json")
	}

	return "x86_64-unknown-uefi"
}

// targetDir is the directory name cargo writes the variant's build output
// to, below "target/".
func (v Variant) targetDir() string {
	if v == VariantBIOS {
		return "x86_64-bios-target"
	}

	return "x86_64-unknown-uefi"
}
