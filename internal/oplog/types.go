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

// Package oplog records the messages produced while an operation runs so
// they can be shown, stored with the migration, or exported.
package oplog

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Entry is a single recorded log message.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Time      time.Time `json:"time"`
	Message   string    `json:"message"`
	Decorated bool      `json:"decorated"`
	Stdout    bool      `json:"stdout"`
}

// Sink collects entries and echoes the ones flagged for stdout.
type Sink struct {
	logger  *slog.Logger
	out     io.Writer
	style   lipgloss.Style
	now     func() time.Time
	mu      sync.Mutex
	entries []Entry
}

// Option configures a Sink.
type Option func(*Sink)
