// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCommandRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd := &bootrun.ToolCommand{
			Path: "/bin/sh",
			Args: []string{"-c", "echo compiling"},
		}

		var stdout, stderr bytes.Buffer

		exitCode, err := cmd.Run(context.Background(), &stdout, &stderr)
		require.NoError(t, err)

		assert.Equal(t, 0, exitCode)
		assert.Equal(t, "compiling\n", stdout.String())
	})

	t.Run("exit code passes through verbatim", func(t *testing.T) {
		cmd := &bootrun.ToolCommand{
			Path: "/bin/sh",
			Args: []string{"-c", "exit 101"},
		}

		exitCode, err := cmd.Run(context.Background(), nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 101, exitCode)
	})

	t.Run("unstartable tool", func(t *testing.T) {
		cmd := &bootrun.ToolCommand{
			Path: "/nonexistent/cargo",
		}

		exitCode, err := cmd.Run(context.Background(), nil, nil)
		require.Error(t, err)

		assert.Equal(t, -1, exitCode)
	})
}

func TestToolCommandString(t *testing.T) {
	cmd := &bootrun.ToolCommand{
		Path: "objcopy",
		Args: []string{"-O", "binary", "bootloader", "bmb_bin"},
	}

	assert.Equal(t, "objcopy -O binary bootloader bmb_bin", cmd.String())
}
