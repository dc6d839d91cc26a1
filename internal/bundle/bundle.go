// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/cpio"
)

// Write creates a cpio archive at path containing the named files from dir.
//
// Entries are stored flat under their bare names. Files must be regular
// files.
func Write(path, dir string, names []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	writer := cpio.NewWriter(out)

	for _, name := range names {
		if err := writeFile(writer, dir, name); err != nil {
			_ = writer.Close()
			_ = out.Close()

			return err
		}
	}

	return errors.Join(closeWriter(writer), closeFile(out))
}

// writeFile copies the existing file from dir into the archive.
func writeFile(writer *cpio.Writer, dir, name string) error {
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("read info for %s: %w", name, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", name, ErrNotRegularFile)
	}

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header for %s: %w", name, err)
	}

	header.Name = name

	if err := writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", name, err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}

func closeWriter(writer *cpio.Writer) error {
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close archive writer: %w", err)
	}

	return nil
}

func closeFile(file *os.File) error {
	if err := file.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}
