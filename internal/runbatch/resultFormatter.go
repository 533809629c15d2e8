// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matt-FFFFFF/gorobocopy/internal/color"
)

// OutputOptions controls what is included in the output.
type OutputOptions struct {
	IncludeStdOut    bool                  // Whether to include stdout in the output
	IncludeDuration  bool                  // Whether to show how long each command ran
	DescribeExitCode func(code int) string // Optional text appended to the exit code
}

// DefaultOutputOptions returns a default set of output options.
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		IncludeDuration: true,
	}
}

// WriteResults writes one status line per result to w.
func WriteResults(w io.Writer, results Results, options *OutputOptions) error {
	if options == nil {
		options = DefaultOutputOptions()
	}

	for _, r := range results {
		if err := writeResult(w, r, options); err != nil {
			return err
		}
	}

	return nil
}

// WriteFailure writes the error returned by a batch to w.
// A *ProcessError is shown with its label and exit code, anything else as a plain error line.
func WriteFailure(w io.Writer, err error, options *OutputOptions) error {
	if err == nil {
		return nil
	}

	if options == nil {
		options = DefaultOutputOptions()
	}

	label := "[unnamed]"
	exitCode := -1
	msg := err.Error()

	var pe *ProcessError
	if errors.As(err, &pe) {
		if pe.Label != "" {
			label = pe.Label
		}

		exitCode = pe.ExitCode
		msg = pe.Diagnostic
	}

	if _, werr := fmt.Fprintf(
		w,
		"%s %s%s%s%s\n",
		color.Colorize("✗", color.FgRed),
		color.ControlString(color.Bold, color.FgRed),
		label,
		color.ControlString(color.Reset),
		exitCodeSuffix(exitCode, options),
	); werr != nil {
		return werr //nolint:wrapcheck
	}

	if msg == "" {
		return nil
	}

	_, werr := fmt.Fprintf(
		w,
		"  %s\n%s",
		color.Colorize("➜ Error:", color.FgRed),
		formatOutput(msg, "     "),
	)

	return werr //nolint:wrapcheck
}

func writeResult(w io.Writer, r *Result, options *OutputOptions) error {
	label := r.Label
	if label == "" {
		label = "[unnamed]"
	}

	line := fmt.Sprintf(
		"%s %s%s%s%s",
		color.Colorize("✓", color.FgGreen),
		color.ControlString(color.Bold, color.FgGreen),
		label,
		color.ControlString(color.Reset),
		exitCodeSuffix(r.ExitCode, options),
	)

	if options.IncludeDuration && r.Duration > 0 {
		line += color.Colorize(" in "+r.Duration.Round(time.Millisecond).String(), color.Faint)
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err //nolint:wrapcheck
	}

	if options.IncludeStdOut && r.StdOut != "" {
		if _, err := fmt.Fprintf(w, "  ➜ Output:\n%s", formatOutput(r.StdOut, "     ")); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func exitCodeSuffix(code int, options *OutputOptions) string {
	if code == 0 && options.DescribeExitCode == nil {
		return ""
	}

	s := fmt.Sprintf(" (exit code: %d", code)
	if options.DescribeExitCode != nil {
		if desc := options.DescribeExitCode(code); desc != "" {
			s += ", " + desc
		}
	}

	return s + ")"
}

// formatOutput formats multi-line output with proper indentation.
func formatOutput(output string, indent string) string {
	sb := strings.Builder{}
	lines := strings.Split(output, "\n")
	sb.Grow(len(output) + len(lines)*(len(indent)+1))

	for _, line := range lines {
		if line == "" {
			sb.WriteString("\n") // Preserve empty lines
			continue
		}

		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
