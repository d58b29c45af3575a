// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package exec

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// ErrPtyUnsupported is returned by RunPty on platforms without a
// pseudo-terminal facility.
var ErrPtyUnsupported = errors.New("pseudo-terminal not supported on this platform")

// Manager runs external commands.
type Manager interface {
	// RunPty runs the command attached to a newly allocated pseudo-terminal.
	RunPty(
		name string,
		args []string,
		opts RunOpts,
	) (*CmdResult, error)
	// RunPipe runs the command with stdout and stderr merged over a pipe.
	RunPipe(
		name string,
		args []string,
		opts RunOpts,
	) (*CmdResult, error)
}

// RunOpts controls how a command is attached to the caller's terminal.
type RunOpts struct {
	// Interactive connects the child to Stdin and Stdout live; nothing is
	// captured.
	Interactive bool
	// Stdout receives a live copy of the child's output. Defaults to
	// os.Stdout.
	Stdout io.Writer
	// Stdin is the terminal forwarded to the child in interactive mode.
	// Defaults to os.Stdin.
	Stdin *os.File
}

// CmdResult contains the outcome of a command execution.
type CmdResult struct {
	// Output is everything the child wrote before termination. Empty in
	// interactive mode.
	Output string
	// ExitCode is the process exit code, -1 when terminated by a signal.
	ExitCode int
	// Signaled reports whether the process was terminated by a signal.
	Signaled bool
	// Signal is the terminating signal number when Signaled is set.
	Signal int
	// DurationMs is the execution time in milliseconds.
	DurationMs int64
}

// Exec runs commands on the local system.
type Exec struct {
	logger *slog.Logger
}

// New factory to create a new Exec instance.
func New(
	logger *slog.Logger,
) *Exec {
	return &Exec{
		logger: logger,
	}
}

func (o RunOpts) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}

	return o.Stdout
}

func (o RunOpts) stdin() *os.File {
	if o.Stdin == nil {
		return os.Stdin
	}

	return o.Stdin
}
