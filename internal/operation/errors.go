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
)

// ErrEmptyCommand is returned when an empty Operation is run. Callers are
// expected to check IsEmpty first.
var ErrEmptyCommand = errors.New("operation has no command")

// Error reports a command that was interrupted by a signal or returned a
// non-zero exit code.
type Error struct {
	Message string

	exitCode int
	signal   int
}

func (e *Error) Error() string {
	return e.Message
}

// ExitStatus returns the status a shell would report for the failed
// command: the exit code, or 128+signal.
func (e *Error) ExitStatus() int {
	if e.signal > 0 {
		return 128 + e.signal
	}

	return e.exitCode
}

func newSignalError(
	op Operation,
	signal int,
) *Error {
	return &Error{
		Message:  fmt.Sprintf("command '%s' has been interrupted by signal %d", op, signal),
		exitCode: -1,
		signal:   signal,
	}
}

func newExitError(
	op Operation,
	exitCode int,
) *Error {
	return &Error{
		Message:  fmt.Sprintf("command '%s' returned %d", op, exitCode),
		exitCode: exitCode,
	}
}
