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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/opexec/internal/operation"
)

type OperationPublicTestSuite struct {
	suite.Suite
}

func (s *OperationPublicTestSuite) TestParse() {
	tests := []struct {
		name        string
		command     string
		want        []string
		expectEmpty bool
		expectError bool
	}{
		{
			name:    "splits on whitespace",
			command: "git status",
			want:    []string{"git", "status"},
		},
		{
			name:    "keeps double quoted argument together",
			command: `git commit -m "hello world"`,
			want:    []string{"git", "commit", "-m", "hello world"},
		},
		{
			name:    "keeps single quoted argument literally",
			command: `echo 'a $b' c\ d`,
			want:    []string{"echo", "a $b", "c d"},
		},
		{
			name:    "collapses irregular whitespace",
			command: "  ls \t -la  ",
			want:    []string{"ls", "-la"},
		},
		{
			name:        "empty string is empty",
			command:     "",
			expectEmpty: true,
		},
		{
			name:        "unterminated quote fails",
			command:     `echo "oops`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			op, err := operation.Parse(tt.command)

			if tt.expectError {
				s.Error(err)
				s.True(op.IsEmpty())
				return
			}

			s.NoError(err)
			s.Equal(tt.expectEmpty, op.IsEmpty())
			if !tt.expectEmpty {
				s.Equal(tt.want, op.Command())
			}
		})
	}
}

func (s *OperationPublicTestSuite) TestParseRoundTrip() {
	inputs := []string{
		"git status",
		"odoo --stop-after-init -u all",
		`echo "a b" 'c d'`,
	}

	for _, input := range inputs {
		s.Run(input, func() {
			first, err := operation.Parse(input)
			s.Require().NoError(err)

			again, err := operation.Parse(strings.Join(first.Command(), " "))
			s.Require().NoError(err)

			rejoined, err := operation.Parse(again.String())
			s.Require().NoError(err)
			s.Equal(again.Command(), rejoined.Command())
		})
	}
}

func (s *OperationPublicTestSuite) TestFromArgs() {
	args := []string{"echo", "hello world"}
	op := operation.FromArgs(args...)

	args[1] = "changed"

	s.Equal([]string{"echo", "hello world"}, op.Command())
	s.False(op.IsEmpty())

	cmd := op.Command()
	cmd[0] = "rm"
	s.Equal("echo hello world", op.String())
}

func (s *OperationPublicTestSuite) TestIsEmpty() {
	s.True(operation.Operation{}.IsEmpty())
	s.True(operation.FromArgs().IsEmpty())
	s.False(operation.FromArgs("true").IsEmpty())
}

func (s *OperationPublicTestSuite) TestDisplay() {
	op := operation.FromArgs("git", "status")

	s.Equal("git status", op.String())
	s.Equal("Operation<git status>", fmt.Sprintf("%#v", op))
	s.Equal("git status", fmt.Sprintf("%v", op))
}

func TestOperationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(OperationPublicTestSuite))
}
