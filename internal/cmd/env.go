// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

const envArgsVar = "BOOTRUN_ARGS"

// EnvArgs returns bootrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(envArgsVar))
}

// LocalConfigArgs returns bootrun arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be
// used and are expanded with [os.ExpandEnv]. A missing file is not an
// error.
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for _, line := range strings.Split(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges arguments from all sources in increasing precedence:
// local config file, environment variable, command line.
func MergedArgs(
	cliArgs []string,
	fsys fs.FS,
	file string,
) ([]string, error) {
	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, err
	}

	return slices.Concat(localArgs, EnvArgs(), cliArgs), nil
}
