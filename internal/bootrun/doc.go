// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootrun builds and launches the bootloader image.
//
// It composes the external toolchain into one of two pipelines, selected by
// [Variant]: the BIOS variant compiles the bootloader, extracts a debug
// symbol file and a flat raw image and boots the image as a raw disk; the
// UEFI variant compiles the bootloader and boots the build directory as a
// FAT formatted disk behind OVMF firmware.
package bootrun
