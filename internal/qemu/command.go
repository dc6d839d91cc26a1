// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Command is a single QEMU command that can be run.
type Command struct {
	name      string
	args      []string
	serialLog string
}

// NewCommand validates the given spec and compiles it into a runnable
// [Command].
func NewCommand(spec CommandSpec) (*Command, error) {
	if spec.Executable == "" {
		return nil, ErrEmptyExecutable
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		name:      spec.Executable,
		args:      args,
		serialLog: spec.SerialLog,
	}

	return cmd, nil
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Args returns the command's argument strings.
func (c *Command) Args() []string {
	return c.args
}

// Run starts the QEMU command and blocks until it terminates.
//
// The guest runs interactively on the given streams. If a serial log file is
// configured, the additional serial console is streamed into it for the
// lifetime of the process.
//
// A non-zero exit status is returned as [CommandError] carrying the exit
// code.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	copyGroup := &errgroup.Group{}

	if c.serialLog != "" {
		cleanup, err := c.attachSerialLog(cmd, copyGroup)
		if err != nil {
			return err
		}

		defer cleanup()
	}

	err := cmd.Start()
	if err != nil {
		return &CommandError{Err: err, ExitCode: -1}
	}

	// The write end has been inherited by the child. Close our copy so the
	// log copier sees EOF once QEMU terminates.
	closeExtraFiles(cmd)

	waitErr := cmd.Wait()
	copyErr := copyGroup.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return &CommandError{
				Err:      ErrNonZeroExitCode,
				ExitCode: exitErr.ExitCode(),
			}
		}

		return &CommandError{Err: waitErr, ExitCode: -1}
	}

	if copyErr != nil {
		return fmt.Errorf("serial log: %w", copyErr)
	}

	return nil
}

// attachSerialLog wires a pipe into the command's extra files and spawns a
// copier writing the read end into the log file.
func (c *Command) attachSerialLog(
	cmd *exec.Cmd,
	group *errgroup.Group,
) (func(), error) {
	logFile, err := os.Create(c.serialLog)
	if err != nil {
		return nil, fmt.Errorf("create serial log: %w", err)
	}

	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("serial log pipe: %w", err)
	}

	cmd.ExtraFiles = append(cmd.ExtraFiles, writePipe)

	group.Go(func() error {
		defer readPipe.Close() //nolint:errcheck

		_, err := io.Copy(logFile, readPipe)
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}

		return nil
	})

	cleanup := func() {
		closeExtraFiles(cmd)
		_ = group.Wait()
		_ = logFile.Close()
	}

	return cleanup, nil
}

func closeExtraFiles(cmd *exec.Cmd) {
	for _, file := range cmd.ExtraFiles {
		_ = file.Close()
	}

	cmd.ExtraFiles = nil
}
