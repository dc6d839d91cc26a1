// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"errors"
	"fmt"
)

var (
	// ErrVariantInvalid is returned if a variant name is unknown.
	ErrVariantInvalid = errors.New("unknown variant")

	// ErrNotRegularFile is returned if a required input file exists but is
	// not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotDirectory is returned if the project root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// StageError reports a failed pipeline stage.
//
// ExitCode carries the failing tool's raw exit code so the invoking
// environment can distinguish failure causes. It is -1 if the stage failed
// before its tool produced an exit code.
type StageError struct {
	Stage    string
	ExitCode int
	Err      error
}

// Error implements the [error] interface.
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
	}

	return fmt.Sprintf("stage %s: exit code %d", e.Stage, e.ExitCode)
}

// Is implements the [errors.Is] interface.
func (*StageError) Is(other error) bool {
	_, ok := other.(*StageError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StageError) Unwrap() error {
	return e.Err
}
