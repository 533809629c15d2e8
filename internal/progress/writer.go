// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/matt-FFFFFF/gorobocopy/internal/color"
)

// WriterReporter mirrors output lines to an io.Writer as they arrive.
// A started event is echoed as the command line about to run. Other lifecycle
// events are ignored, they are logged by the runner.
type WriterReporter struct {
	w      io.Writer
	prefix bool
	mu     sync.Mutex
}

var (
	_ Reporter = (*WriterReporter)(nil)
	_ Listener = (*WriterReporter)(nil)
)

// NewWriterReporter returns a reporter writing to w.
// When prefix is true each line is preceded by the command label, which keeps
// interleaved output from parallel destinations readable.
func NewWriterReporter(w io.Writer, prefix bool) *WriterReporter {
	return &WriterReporter{
		w:      w,
		prefix: prefix,
	}
}

// Report implements Reporter.
func (wr *WriterReporter) Report(event Event) {
	var line string

	switch {
	case event.Type == EventStarted && event.Data.CommandLine != "":
		line = color.Colorize(event.Data.CommandLine, color.FgHiBlack)
	case event.Type == EventOutput && event.Data.IsStderr:
		line = color.Colorize(event.Data.OutputLine, color.FgRed)
	case event.Type == EventOutput:
		line = event.Data.OutputLine
	default:
		return
	}

	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.prefix {
		fmt.Fprintf(wr.w, "%s %s\n", color.Colorize("["+event.Label+"]", color.FgCyan), line) //nolint:errcheck
		return
	}

	fmt.Fprintln(wr.w, line) //nolint:errcheck
}

// OnEvent implements Listener, so a WriterReporter can sit behind a ChannelReporter.
func (wr *WriterReporter) OnEvent(event Event) {
	wr.Report(event)
}

// Close implements Reporter.
func (wr *WriterReporter) Close() {}
