// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aibor/bootrun/internal/bundle"
	"github.com/aibor/bootrun/internal/qemu"
)

// Stage is a single step of a [Pipeline].
type Stage struct {
	// Name identifies the stage in errors and logs.
	Name string

	// State the pipeline is in while the stage runs.
	State State

	// Run executes the stage. A nil return lets the pipeline continue.
	Run func(ctx context.Context) error

	// BestEffort marks a terminal stage whose failure is logged instead of
	// failing the pipeline.
	BestEffort bool
}

// Pipeline runs a fixed sequence of stages with fail-fast semantics.
//
// It is fully sequential: each stage is a blocking external process
// invocation and no two stages ever run concurrently. The stages
// communicate solely through the spec's build directory, which is safe
// because they never overlap in time.
type Pipeline struct {
	stages []Stage
	state  State
}

// NewPipeline composes the stage sequence for the given spec.
//
// Exactly one of the two variant pipelines is produced: the BIOS variant
// compiles and extracts, the UEFI variant only compiles. Bundling is
// scheduled if a bundle path is set. The launch stage is not scheduled at
// all in build-only mode.
func NewPipeline(
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) *Pipeline {
	stages := []Stage{
		{
			Name:  "compile",
			State: StateCompiling,
			Run:   compileStage(spec, stdout, stderr),
		},
	}

	if spec.Variant == VariantBIOS {
		stages = append(stages, Stage{
			Name:  "extract",
			State: StateExtracting,
			Run:   extractStage(spec, stdout, stderr),
		})
	}

	if spec.Bundle != "" {
		stages = append(stages, Stage{
			Name:  "bundle",
			State: StateBundling,
			Run:   bundleStage(spec),
		})
	}

	if !spec.BuildOnly {
		stages = append(stages, Stage{
			Name:       "launch",
			State:      StateLaunching,
			Run:        launchStage(spec, stdin, stdout, stderr),
			BestEffort: true,
		})
	}

	return &Pipeline{
		stages: stages,
		state:  StateIdle,
	}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the stages in order.
//
// The first failing stage halts the pipeline, moves it to the failed state
// and its error is returned. Failures of best-effort stages are logged and
// do not halt the pipeline. No stage is ever retried.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, stage := range p.stages {
		p.state = stage.State

		slog.Debug("Running stage", slog.String("stage", stage.Name))

		err := stage.Run(ctx)
		if err == nil {
			continue
		}

		if stage.BestEffort {
			slog.Warn("Stage failed",
				slog.String("stage", stage.Name),
				slog.Any("error", err),
			)

			continue
		}

		p.state = StateFailed

		return err
	}

	p.state = StateDone

	return nil
}

// runTool runs the given tool command and converts a non-zero exit code
// into a [StageError] for the named stage.
func runTool(
	ctx context.Context,
	stageName string,
	cmd *ToolCommand,
	stdout, stderr io.Writer,
) error {
	slog.Debug("Tool command", slog.String("command", cmd.String()))

	exitCode, err := cmd.Run(ctx, stdout, stderr)
	if err != nil {
		return &StageError{Stage: stageName, ExitCode: -1, Err: err}
	}

	if exitCode != 0 {
		return &StageError{Stage: stageName, ExitCode: exitCode}
	}

	return nil
}

func compileStage(
	spec *Spec,
	stdout, stderr io.Writer,
) func(context.Context) error {
	return func(ctx context.Context) error {
		return runTool(ctx, "compile", CompileCommand(spec), stdout, stderr)
	}
}

// extractStage runs the two objcopy sub-steps in their fixed order. The raw
// image sub-step runs only if the symbol sub-step succeeded.
func extractStage(
	spec *Spec,
	stdout, stderr io.Writer,
) func(context.Context) error {
	return func(ctx context.Context) error {
		err := runTool(
			ctx, "extract-symbols", SymbolsCommand(spec), stdout, stderr,
		)
		if err != nil {
			return err
		}

		return runTool(ctx, "extract-image", ImageCommand(spec), stdout, stderr)
	}
}

func bundleStage(spec *Spec) func(context.Context) error {
	return func(_ context.Context) error {
		err := bundle.Write(spec.Bundle, spec.BuildDir(), spec.artifacts())
		if err != nil {
			return &StageError{Stage: "bundle", ExitCode: -1, Err: err}
		}

		slog.Debug("Wrote artifact bundle", slog.String("path", spec.Bundle))

		return nil
	}
}

func launchStage(
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) func(context.Context) error {
	return func(ctx context.Context) error {
		cmd, err := qemu.NewCommand(NewQemuSpec(spec))
		if err != nil {
			return &StageError{Stage: "launch", ExitCode: -1, Err: err}
		}

		slog.Debug("QEMU command", slog.String("command", cmd.String()))

		err = cmd.Run(ctx, stdin, stdout, stderr)
		if err != nil {
			exitCode := -1

			var cmdErr *qemu.CommandError
			if errors.As(err, &cmdErr) {
				exitCode = cmdErr.ExitCode
			}

			return &StageError{Stage: "launch", ExitCode: exitCode, Err: err}
		}

		return nil
	}
}
