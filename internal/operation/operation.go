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

// Package operation runs a single external command the way a migration
// step needs it: echoed, attached to a pseudo-terminal, and turned into an
// *Error when the command does not exit cleanly.
package operation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/shlex"
)

// Operation is one external command invocation. The zero value is empty.
type Operation struct {
	command []string
}

// Parse splits command with POSIX shell quoting and escaping rules.
func Parse(
	command string,
) (Operation, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return Operation{}, fmt.Errorf("failed to parse command %q: %w", command, err)
	}

	return Operation{command: args}, nil
}

// FromArgs builds an Operation from an already split argument list.
func FromArgs(
	args ...string,
) Operation {
	return Operation{command: slices.Clone(args)}
}

// IsEmpty reports whether the Operation has no command to run.
func (o Operation) IsEmpty() bool {
	return len(o.command) == 0
}

// Command returns a copy of the argument list.
func (o Operation) Command() []string {
	return slices.Clone(o.command)
}

// String returns the space-joined command.
func (o Operation) String() string {
	return strings.Join(o.command, " ")
}

// GoString implements fmt.GoStringer.
func (o Operation) GoString() string {
	return fmt.Sprintf("Operation<%s>", o.String())
}
