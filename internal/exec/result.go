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
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"
)

// newCmdResult builds a CmdResult from a finished process.
func newCmdResult(
	state *os.ProcessState,
	output string,
	duration time.Duration,
) *CmdResult {
	result := &CmdResult{
		Output:     output,
		ExitCode:   state.ExitCode(),
		DurationMs: duration.Milliseconds(),
	}

	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		result.Signaled = true
		result.Signal = int(status.Signal())
	}

	return result
}

func (e *Exec) logResult(
	msg string,
	name string,
	args []string,
	result *CmdResult,
	err error,
) {
	attrs := []any{
		slog.String("command", strings.Join(append([]string{name}, args...), " ")),
		slog.Any("error", err),
	}
	if result != nil {
		attrs = append(attrs,
			slog.Int("exit_code", result.ExitCode),
			slog.Bool("signaled", result.Signaled),
			slog.Int("signal", result.Signal),
			slog.Int64("duration_ms", result.DurationMs),
		)
	}

	e.logger.Debug(msg, attrs...)
}
