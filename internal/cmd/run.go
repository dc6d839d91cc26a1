// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/bootrun/internal/bootrun"
)

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlagsFromArgs(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.parseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func run(ctx context.Context, spec *bootrun.Spec, cfg IO) error {
	err := bootrun.Validate(spec)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	slog.Debug("Resolved run parameters",
		slog.String("variant", spec.Variant.String()),
		slog.String("builddir", spec.BuildDir()),
		slog.Bool("release", spec.Release),
		slog.Bool("build-only", spec.BuildOnly),
	)

	pipeline := bootrun.NewPipeline(spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)

	err = pipeline.Run(ctx)
	if err != nil {
		return err
	}

	slog.Debug("Pipeline finished",
		slog.String("state", pipeline.State().String()))

	return nil
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help or version is requested. Exit
	// without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// parseArgs already prints its errors, so just exit for those.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	exitCode := -1

	// The first failing stage's raw exit code becomes the overall result so
	// the invoking environment can distinguish failure causes by code.
	var stageErr *bootrun.StageError
	if errors.As(err, &stageErr) && stageErr.ExitCode > 0 {
		exitCode = stageErr.ExitCode
	}

	slog.Error(err.Error())

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := newFlagsFromArgs(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.verbose)

	err = run(ctx, &flags.spec, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
