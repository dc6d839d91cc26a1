// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "errors"

var (
	// ErrEmptyExecutable is returned if a [CommandSpec] does not name a
	// qemu-system binary.
	ErrEmptyExecutable = errors.New("no qemu executable given")

	// ErrNonZeroExitCode is returned if the QEMU process terminated with a
	// non-zero exit code.
	ErrNonZeroExitCode = errors.New("exit code not 0")

	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")
)

// CommandError wraps any error occurred during [Command] execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "qemu: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
