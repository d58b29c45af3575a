//go:build integration

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

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RunSmokeSuite struct {
	suite.Suite
}

func (s *RunSmokeSuite) TestRun() {
	logFile := filepath.Join(tempDir, "run.jsonl")

	tests := []struct {
		name         string
		args         []string
		validateFunc func(stdout string, stderr string, exitCode int)
	}{
		{
			name: "mirrors output and echoes the command",
			args: []string{"run", "--command", "echo hello"},
			validateFunc: func(
				stdout string,
				_ string,
				exitCode int,
			) {
				s.Require().Equal(0, exitCode)
				s.Contains(stdout, "|> echo hello")
				s.Contains(stdout, "hello\r\n")
			},
		},
		{
			name: "returns summary as json",
			args: []string{"--json", "run", "--", "sh", "-c", "exit 3"},
			validateFunc: func(
				stdout string,
				_ string,
				exitCode int,
			) {
				s.Require().Equal(3, exitCode)

				var result map[string]any
				s.Require().NoError(parseJSON(stdout, &result))
				s.Equal("failed", result["status"])
				s.Equal(float64(3), result["exit_code"])
				s.Equal("command 'sh -c exit 3' returned 3", result["error"])
			},
		},
		{
			name: "propagates signal as 128 plus signal",
			args: []string{"run", "--", "sh", "-c", "kill -9 $$"},
			validateFunc: func(
				_ string,
				stderr string,
				exitCode int,
			) {
				s.Equal(137, exitCode)
				s.Contains(stderr, "has been interrupted by signal 9")
			},
		},
		{
			name: "writes the operation log",
			args: []string{"run", "--log-file", logFile, "--", "printf", `a\nb\n`},
			validateFunc: func(
				_ string,
				_ string,
				exitCode int,
			) {
				s.Require().Equal(0, exitCode)

				data, err := os.ReadFile(logFile)
				s.Require().NoError(err)
				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				s.Len(lines, 2)
				s.Contains(lines[1], `"message":"a\nb"`)
			},
		},
		{
			name: "rejects an empty command",
			args: []string{"run", "--command", ""},
			validateFunc: func(
				_ string,
				stderr string,
				exitCode int,
			) {
				s.Equal(1, exitCode)
				s.Contains(stderr, "no command given")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			stdout, stderr, exitCode := runCLI(tt.args...)
			tt.validateFunc(stdout, stderr, exitCode)
		})
	}
}

func TestRunSmokeSuite(t *testing.T) {
	suite.Run(t, new(RunSmokeSuite))
}
