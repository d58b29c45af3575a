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

package operation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/retr0h/opexec/internal/exec"
)

// LogFunc receives the messages produced while running an Operation.
// decorated marks a message meant to stand out (the command echo); stdout
// marks a message that should also be shown on the terminal, as opposed to
// captured output that was already mirrored live.
type LogFunc func(message string, decorated bool, stdout bool)

// Mode selects whether the child is attached to the caller's terminal.
type Mode string

const (
	// ModeAuto is interactive when stdout is a terminal.
	ModeAuto Mode = "auto"
	// ModeAlways is always interactive.
	ModeAlways Mode = "always"
	// ModeNever always captures output.
	ModeNever Mode = "never"
)

// Runner executes Operations.
type Runner struct {
	logger      *slog.Logger
	execManager exec.Manager
	stdout      io.Writer
	stdin       *os.File
	mode        Mode
	usePty      bool
	isTerminal  func() bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdout sets where the child's output is mirrored. Defaults to
// os.Stdout.
func WithStdout(
	w io.Writer,
) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStdin sets the terminal forwarded to interactive children. Defaults
// to os.Stdin.
func WithStdin(
	f *os.File,
) Option {
	return func(r *Runner) {
		r.stdin = f
	}
}

// WithMode overrides the interactivity decision made by Execute.
func WithMode(
	mode Mode,
) Option {
	return func(r *Runner) {
		r.mode = mode
	}
}

// WithPty enables or disables the pseudo-terminal. Without one the child
// runs over plain pipes.
func WithPty(
	enabled bool,
) Option {
	return func(r *Runner) {
		r.usePty = enabled
	}
}

// WithTerminalCheck replaces the check used by ModeAuto.
func WithTerminalCheck(
	fn func() bool,
) Option {
	return func(r *Runner) {
		r.isTerminal = fn
	}
}

// New factory to create a new Runner instance.
func New(
	logger *slog.Logger,
	execManager exec.Manager,
	opts ...Option,
) *Runner {
	r := &Runner{
		logger:      logger,
		execManager: execManager,
		stdout:      os.Stdout,
		stdin:       os.Stdin,
		mode:        ModeAuto,
		usePty:      true,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Execute echoes the command to log and runs it, interactively when the
// Runner's mode says so.
func (r *Runner) Execute(
	op Operation,
	log LogFunc,
) error {
	log(op.String(), true, true)

	return r.Run(op, log, r.interactive())
}

// Run spawns the command and waits for it without a timeout. A signal or
// non-zero exit yields an *Error. On success in non-interactive mode the
// captured output is normalized and passed to log.
func (r *Runner) Run(
	op Operation,
	log LogFunc,
	interactive bool,
) error {
	if op.IsEmpty() {
		return ErrEmptyCommand
	}

	r.logger.Debug("running operation",
		slog.String("command", op.String()),
		slog.Bool("interactive", interactive),
		slog.Bool("pty", r.usePty),
	)

	result, err := r.spawn(op.command[0], op.command[1:], exec.RunOpts{
		Interactive: interactive,
		Stdout:      r.stdout,
		Stdin:       r.stdin,
	})
	if err != nil {
		return fmt.Errorf("command '%s' could not be run: %w", op, err)
	}

	switch {
	case result.Signaled:
		return newSignalError(op, result.Signal)
	case result.ExitCode != 0:
		return newExitError(op, result.ExitCode)
	}

	if !interactive {
		log(NormalizeOutput(result.Output), false, false)
	}

	return nil
}

func (r *Runner) interactive() bool {
	switch r.mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return r.isTerminal()
	}
}

func (r *Runner) spawn(
	name string,
	args []string,
	opts exec.RunOpts,
) (*exec.CmdResult, error) {
	if r.usePty {
		result, err := r.execManager.RunPty(name, args, opts)
		if !errors.Is(err, exec.ErrPtyUnsupported) {
			return result, err
		}

		r.logger.Warn("pseudo-terminal unavailable, falling back to pipes",
			slog.String("command", name),
		)
	}

	return r.execManager.RunPipe(name, args, opts)
}
