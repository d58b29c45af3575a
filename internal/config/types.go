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

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	// Interactive selects when commands are attached to the terminal:
	// "auto" (when stdout is a terminal), "always" or "never".
	Interactive string `mapstructure:"interactive" validate:"required,oneof=auto always never"`
	// Pty runs commands under a pseudo-terminal. When false, or when the
	// platform has none, commands run over plain pipes.
	Pty bool `mapstructure:"pty"`
	Log Log  `mapstructure:"log"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Log configuration settings for the operation log.
type Log struct {
	// File is an optional path the operation log is appended to as JSON
	// lines.
	File string `mapstructure:"file" validate:"omitempty,filepath"`
	// NoColor disables styling of decorated messages.
	NoColor bool `mapstructure:"no_color"`
}
