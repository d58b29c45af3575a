//go:build !windows

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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// RunPty executes the provided command attached to a new pseudo-terminal.
// No timeout is applied; the call blocks until the child exits and its
// output is drained. A non-zero exit or signal termination is reported in
// the result, not as an error.
func (e *Exec) RunPty(
	name string,
	args []string,
	opts RunOpts,
) (*CmdResult, error) {
	// #nosec G204 - the command line is supplied by the migration author
	cmd := exec.Command(name, args...)

	start := time.Now()
	ptmx, err := pty.Start(cmd)
	if err != nil {
		e.logResult("exec pty", name, args, nil, err)
		return nil, fmt.Errorf("failed to execute command: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var output bytes.Buffer
	if opts.Interactive {
		err = e.interact(ptmx, opts)
	} else {
		err = copyOutput(io.MultiWriter(opts.stdout(), &output), ptmx)
	}
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		e.logResult("exec pty", name, args, nil, err)
		return nil, fmt.Errorf("failed to read command output: %w", err)
	}

	if err := cmd.Wait(); err != nil && cmd.ProcessState == nil {
		e.logResult("exec pty", name, args, nil, err)
		return nil, fmt.Errorf("failed to wait for command: %w", err)
	}

	result := newCmdResult(cmd.ProcessState, output.String(), time.Since(start))
	e.logResult("exec pty", name, args, result, nil)

	return result, nil
}

// interact hands the pseudo-terminal to the caller's terminal until the
// child closes its side.
func (e *Exec) interact(
	ptmx *os.File,
	opts RunOpts,
) error {
	stdin := opts.stdin()
	fd := int(stdin.Fd())

	if term.IsTerminal(fd) {
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		go func() {
			for range winch {
				if err := pty.InheritSize(stdin, ptmx); err != nil {
					e.logger.Debug("failed to resize pty", "error", err)
				}
			}
		}()
		winch <- syscall.SIGWINCH
		defer func() {
			signal.Stop(winch)
			close(winch)
		}()

		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set terminal raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()
	}

	input, err := newStdinReader(stdin)
	if err != nil {
		e.logger.Debug("stdin cannot be cancelled", "error", err)
	}
	defer func() { _ = input.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = io.Copy(ptmx, input)
	}()

	err = copyOutput(opts.stdout(), ptmx)

	// The stdin pump must be gone before the next command reads stdin.
	if input.Cancel() {
		<-done
	}

	return err
}

// newStdinReader wraps stdin so a pending read can be abandoned. Sources
// that cannot be polled (regular files, /dev/null) never block, so they get
// a reader whose Cancel only stops further reads.
func newStdinReader(
	stdin *os.File,
) (cancelreader.CancelReader, error) {
	input, err := cancelreader.NewReader(stdin)
	if err == nil {
		return input, nil
	}

	fallback, _ := cancelreader.NewReader(struct{ io.Reader }{stdin})

	return fallback, err
}

// copyOutput drains the pty master into w. Linux reports EIO once every
// slave descriptor is closed, which marks end of output.
func copyOutput(
	w io.Writer,
	ptmx io.Reader,
) error {
	_, err := io.Copy(w, ptmx)
	if err != nil && !errors.Is(err, syscall.EIO) {
		return err
	}

	return nil
}
