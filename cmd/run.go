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

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/retr0h/opexec/internal/cli"
	"github.com/retr0h/opexec/internal/exec"
	"github.com/retr0h/opexec/internal/operation"
	"github.com/retr0h/opexec/internal/oplog"
)

var errNoCommand = errors.New("no command given")

// runSummary is the JSON form of a finished run.
type runSummary struct {
	Command    []string `json:"command"`
	Status     string   `json:"status"`
	ExitCode   int      `json:"exit_code"`
	DurationMs int64    `json:"duration_ms"`
	Error      string   `json:"error,omitempty"`
	LogFile    string   `json:"log_file,omitempty"`
}

var runCmd = &cobra.Command{
	Use:   "run [flags] [-- command [args...]]",
	Short: "Run a command under a pseudo-terminal",
	Long: `Run a command under a pseudo-terminal and fail with its status when it
does not exit cleanly.

The command is given either as arguments after "--" or as a single string
with --command, which is split with POSIX shell quoting rules.

When stdout is a terminal the command is attached to it, so interactive
programs and debuggers work. Otherwise its output is mirrored to stdout and
captured into the operation log.
`,
	Example: `  opexec run -- git status
  opexec run --command "odoo -u all --stop-after-init"
  opexec run --interactive never --log-file /var/log/migration.jsonl -- ./upgrade.sh`,
	Run: func(cmd *cobra.Command, args []string) {
		command, _ := cmd.Flags().GetString("command")

		op, err := buildOperation(command, args)
		if err != nil {
			cli.LogFatal(logger, "failed to build operation", err)
		}

		var sinkOpts []oplog.Option
		if appConfig.Log.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			sinkOpts = append(sinkOpts, oplog.WithNoColor())
		}
		sink := oplog.New(logger, os.Stdout, sinkOpts...)

		runner := operation.New(
			logger,
			exec.New(logger),
			operation.WithMode(operation.Mode(appConfig.Interactive)),
			operation.WithPty(appConfig.Pty),
		)

		start := time.Now()
		runErr := runner.Execute(op, sink.Log)
		duration := time.Since(start)

		if appConfig.Log.File != "" {
			if err := oplog.Export(appFs, appConfig.Log.File, sink.Entries()); err != nil {
				logger.Error("failed to write operation log",
					"error", err,
					"logFile", appConfig.Log.File,
				)
			}
		}

		summary := runSummary{
			Command:    op.Command(),
			Status:     "ok",
			ExitCode:   cli.ExitCode(runErr),
			DurationMs: duration.Milliseconds(),
			LogFile:    appConfig.Log.File,
		}
		if runErr != nil {
			summary.Status = "failed"
			summary.Error = runErr.Error()
		}

		if jsonOutput {
			if err := writeSummaryJSON(os.Stdout, summary); err != nil {
				cli.LogFatal(logger, "failed to write run summary", err)
			}
		} else {
			fmt.Fprintln(os.Stderr)
			cli.FprintKV(os.Stderr,
				"Status", cli.Status(runErr),
				"Duration", cli.FormatDuration(duration),
			)
			if appConfig.Log.File != "" {
				cli.FprintKV(os.Stderr, "Log", appConfig.Log.File)
			}
		}

		if runErr != nil {
			logger.Error("operation failed", "error", runErr)
			cli.Exit(summary.ExitCode)
		}
	},
}

func writeSummaryJSON(
	w io.Writer,
	summary runSummary,
) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

// buildOperation prefers the --command string and falls back to the
// positional arguments.
func buildOperation(
	command string,
	args []string,
) (operation.Operation, error) {
	var op operation.Operation
	if command != "" {
		if len(args) > 0 {
			return op, fmt.Errorf("--command cannot be combined with positional arguments")
		}

		parsed, err := operation.Parse(command)
		if err != nil {
			return op, err
		}
		op = parsed
	} else {
		op = operation.FromArgs(args...)
	}

	if op.IsEmpty() {
		return op, errNoCommand
	}

	return op, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().
		StringP("command", "c", "", "The command line to run, split with shell quoting rules")
	runCmd.PersistentFlags().
		String("interactive", "auto", "Attach the command to the terminal: auto, always or never")
	runCmd.PersistentFlags().
		Bool("pty", true, "Run the command under a pseudo-terminal")
	runCmd.PersistentFlags().
		String("log-file", "", "Append the operation log as JSON lines to this file")
	runCmd.PersistentFlags().
		Bool("no-color", false, "Disable styling of echoed commands")

	_ = viper.BindPFlag("interactive", runCmd.PersistentFlags().Lookup("interactive"))
	_ = viper.BindPFlag("pty", runCmd.PersistentFlags().Lookup("pty"))
	_ = viper.BindPFlag("log.file", runCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("log.no_color", runCmd.PersistentFlags().Lookup("no-color"))
}
