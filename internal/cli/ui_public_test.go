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

package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/opexec/internal/cli"
	"github.com/retr0h/opexec/internal/exec"
	"github.com/retr0h/opexec/internal/operation"
)

type UITestSuite struct {
	suite.Suite
}

func TestUITestSuite(t *testing.T) {
	suite.Run(t, new(UITestSuite))
}

func (suite *UITestSuite) runCommand(
	command string,
) error {
	op, err := operation.Parse(command)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := operation.New(logger, exec.New(logger), operation.WithStdout(io.Discard))

	return runner.Run(op, func(string, bool, bool) {}, false)
}

func (suite *UITestSuite) TestExitCode() {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "when nil returns zero",
			err:  nil,
			want: 0,
		},
		{
			name: "when plain error returns one",
			err:  errors.New("boom"),
			want: 1,
		},
		{
			name: "when command succeeds returns zero",
			err:  suite.runCommand("true"),
			want: 0,
		},
		{
			name: "when command exits non-zero returns its code",
			err:  suite.runCommand("sh -c 'exit 7'"),
			want: 7,
		},
		{
			name: "when command is killed returns 128 plus signal",
			err:  suite.runCommand("sh -c 'kill -9 $$'"),
			want: 137,
		},
		{
			name: "when wrapped operation error keeps its code",
			err:  fmt.Errorf("migration failed: %w", suite.runCommand("false")),
			want: 1,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, cli.ExitCode(tc.err))
		})
	}
}

func (suite *UITestSuite) TestFormatDuration() {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{
			name:  "when sub-millisecond",
			input: 500 * time.Microsecond,
			want:  "0ms",
		},
		{
			name:  "when milliseconds",
			input: 1234567 * time.Microsecond,
			want:  "1.235s",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, cli.FormatDuration(tc.input))
		})
	}
}

func (suite *UITestSuite) TestFprintKV() {
	tests := []struct {
		name      string
		pairs     []string
		wantEmpty bool
		contains  []string
	}{
		{
			name:     "when pairs are complete",
			pairs:    []string{"Command", "echo hello", "Status", "ok"},
			contains: []string{"Command:", "echo hello", "Status:", "ok"},
		},
		{
			name:      "when pairs are odd prints nothing",
			pairs:     []string{"Command"},
			wantEmpty: true,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var buf bytes.Buffer
			cli.FprintKV(&buf, tc.pairs...)

			if tc.wantEmpty {
				suite.Empty(buf.String())
				return
			}
			for _, c := range tc.contains {
				suite.Contains(buf.String(), c)
			}
		})
	}
}
