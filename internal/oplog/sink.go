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

package oplog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/retr0h/opexec/internal/cli"
)

const decorationPrefix = "|> "

// WithClock replaces the time source used for entries.
func WithClock(
	now func() time.Time,
) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// WithNoColor renders decorated messages without colour.
func WithNoColor() Option {
	return func(s *Sink) {
		s.style = lipgloss.NewStyle()
	}
}

// New factory to create a new Sink writing echoed messages to out.
func New(
	logger *slog.Logger,
	out io.Writer,
	opts ...Option,
) *Sink {
	re := lipgloss.NewRenderer(out)
	s := &Sink{
		logger: logger,
		out:    out,
		style:  re.NewStyle().Bold(true).Foreground(cli.Purple),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Log records message. When stdout is set the message is also written to
// the Sink's output, prefixed and styled when decorated.
func (s *Sink) Log(
	message string,
	decorated bool,
	stdout bool,
) {
	entry := Entry{
		ID:        uuid.New(),
		Time:      s.now(),
		Message:   message,
		Decorated: decorated,
		Stdout:    stdout,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.logger.Debug("operation log",
		slog.String("id", entry.ID.String()),
		slog.Bool("decorated", decorated),
		slog.Bool("stdout", stdout),
		slog.Int("length", len(message)),
	)

	if !stdout {
		return
	}

	line := message
	if decorated {
		line = s.style.Render(decorationPrefix + message)
	}

	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.logger.Warn("failed to write operation log", slog.Any("error", err))
	}
}

// Entries returns a copy of the recorded entries in order.
func (s *Sink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

// Text returns every recorded message joined by newlines, decorated ones
// carrying their plain prefix.
func (s *Sink) Text() string {
	entries := s.Entries()

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Decorated {
			lines = append(lines, decorationPrefix+e.Message)
			continue
		}
		lines = append(lines, e.Message)
	}

	return strings.Join(lines, "\n")
}
