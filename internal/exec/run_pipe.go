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
	"os/exec"
	"time"
)

// RunPipe executes the provided command without a pseudo-terminal. Stdout
// and stderr are merged and mirrored to opts.Stdout while being captured.
// In interactive mode the child inherits the caller's stdin and stdout.
//
// The child does not see a terminal, so output keeps its own line endings
// and programs that require a tty may behave differently.
func (e *Exec) RunPipe(
	name string,
	args []string,
	opts RunOpts,
) (*CmdResult, error) {
	// #nosec G204 - the command line is supplied by the migration author
	cmd := exec.Command(name, args...)

	var output bytes.Buffer
	if opts.Interactive {
		cmd.Stdin = opts.stdin()
		cmd.Stdout = opts.stdout()
		cmd.Stderr = opts.stdout()
	} else {
		w := io.MultiWriter(opts.stdout(), &output)
		cmd.Stdout = w
		cmd.Stderr = w
	}

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.logResult("exec pipe", name, args, nil, err)
			return nil, fmt.Errorf("failed to execute command: %w", err)
		}
	}

	result := newCmdResult(cmd.ProcessState, output.String(), duration)
	e.logResult("exec pipe", name, args, result, nil)

	return result, nil
}
