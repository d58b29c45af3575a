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

package operation_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/opexec/internal/exec"
	"github.com/retr0h/opexec/internal/operation"
)

type RunnerExecPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (s *RunnerExecPublicTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func (s *RunnerExecPublicTestSuite) TestExecute() {
	tests := []struct {
		name        string
		command     string
		usePty      bool
		expectError bool
		errorEquals string
		wantLogs    []string
		wantStdout  string
	}{
		{
			name:       "echo under a pty",
			command:    "echo hello",
			usePty:     true,
			wantLogs:   []string{"echo hello", "hello"},
			wantStdout: "hello\r\n",
		},
		{
			name:       "multi-line output is normalized",
			command:    `printf 'a\nb\n'`,
			usePty:     true,
			wantLogs:   []string{`printf a\nb\n`, "a\nb"},
			wantStdout: "a\r\nb\r\n",
		},
		{
			name:       "echo over pipes",
			command:    "echo hello",
			usePty:     false,
			wantLogs:   []string{"echo hello", "hello"},
			wantStdout: "hello\n",
		},
		{
			name:        "false returns 1",
			command:     "false",
			usePty:      true,
			expectError: true,
			errorEquals: "command 'false' returned 1",
			wantLogs:    []string{"false"},
		},
		{
			name:        "killed by signal 9",
			command:     `sh -c 'kill -9 $$'`,
			usePty:      true,
			expectError: true,
			errorEquals: "command 'sh -c kill -9 $$' has been interrupted by signal 9",
			wantLogs:    []string{"sh -c kill -9 $$"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var stdout bytes.Buffer
			var logs []string

			op, err := operation.Parse(tt.command)
			s.Require().NoError(err)

			sut := operation.New(
				s.logger,
				exec.New(s.logger),
				operation.WithStdout(&stdout),
				operation.WithMode(operation.ModeNever),
				operation.WithPty(tt.usePty),
			)

			err = sut.Execute(op, func(message string, _ bool, _ bool) {
				logs = append(logs, message)
			})

			if tt.expectError {
				var opErr *operation.Error
				s.Require().True(errors.As(err, &opErr))
				s.Equal(tt.errorEquals, opErr.Error())
			} else {
				s.Require().NoError(err)
				s.Equal(tt.wantStdout, stdout.String())
			}
			s.Equal(tt.wantLogs, logs)
		})
	}
}

func TestRunnerExecPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerExecPublicTestSuite))
}
