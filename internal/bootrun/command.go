// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ToolCommand is a single blocking invocation of an external toolchain
// binary.
//
// The tool's own output streams to the given writers unparsed. Its exit
// code is reported verbatim, no diagnostics are interpreted.
type ToolCommand struct {
	// Path to the binary. Resolved via PATH if not absolute.
	Path string

	// Args are the arguments, not including the binary name.
	Args []string

	// Env is the environment of the process. A nil value inherits the
	// invoking process's environment unchanged.
	Env []string
}

// String implements [fmt.Stringer].
func (c *ToolCommand) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Run executes the command and blocks until it terminates.
//
// It returns the process's exit code. An error is returned only if the
// process could not be run at all; in that case the exit code is -1.
func (c *ToolCommand) Run(
	ctx context.Context,
	stdout, stderr io.Writer,
) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = c.Env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, fmt.Errorf("run %s: %w", c.Path, err)
	}

	return 0, nil
}
