// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

// State is the execution state of a [Pipeline].
type State int

// Pipeline states. Done and Failed are terminal.
const (
	StateIdle State = iota
	StateCompiling
	StateExtracting
	StateBundling
	StateLaunching
	StateDone
	StateFailed
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCompiling:
		return "compiling"
	case StateExtracting:
		return "extracting"
	case StateBundling:
		return "bundling"
	case StateLaunching:
		return "launching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
