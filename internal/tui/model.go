// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/matt-FFFFFF/gorobocopy/internal/runbatch"
)

// RowStatus represents the current state of a destination in the TUI.
type RowStatus int

const (
	StatusPending RowStatus = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

// String returns a string representation of the row status.
func (s RowStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Row is the display state of one robocopy process.
type Row struct {
	Label      string
	Status     RowStatus
	StartTime  time.Time
	EndTime    time.Time
	ExitCode   int
	LastOutput string // Last non-blank line of output
	ErrorMsg   string
}

// Elapsed returns how long the row has been running, or ran for.
func (r *Row) Elapsed(now time.Time) time.Duration {
	switch {
	case r.StartTime.IsZero():
		return 0
	case r.EndTime.IsZero():
		return now.Sub(r.StartTime)
	default:
		return r.EndTime.Sub(r.StartTime)
	}
}

// Model represents the TUI application state.
// It is only mutated from the bubbletea event loop.
type Model struct {
	rows      []*Row
	index     map[string]*Row
	spinner   spinner.Model
	styles    *Styles
	width     int
	quitting  bool
	completed bool
	results   runbatch.Results
	err       error
	now       func() time.Time
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Title   lipgloss.Style
	Pending lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Output  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// NewModel creates a new TUI model with a pending row for each label.
// Events for labels not listed here add rows as they arrive.
func NewModel(labels ...string) *Model {
	styles := NewStyles()

	m := &Model{
		index:   make(map[string]*Row, len(labels)),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styles.Running)),
		styles:  styles,
		now:     time.Now,
	}

	for _, l := range labels {
		m.row(l)
	}

	return m
}

// Rows returns the rows in the order they were first seen.
func (m *Model) Rows() []*Row {
	return m.rows
}

// Completed reports whether the run has finished.
func (m *Model) Completed() bool {
	return m.completed
}

func (m *Model) row(label string) *Row {
	if r, ok := m.index[label]; ok {
		return r
	}

	r := &Row{Label: label}
	m.rows = append(m.rows, r)
	m.index[label] = r

	return r
}

// processEvent applies a progress event to the row it belongs to.
func (m *Model) processEvent(event progress.Event) {
	r := m.row(event.Label)

	switch event.Type {
	case progress.EventStarted:
		r.Status = StatusRunning
		r.StartTime = event.Timestamp

	case progress.EventOutput, progress.EventProgress:
		if line := strings.TrimSpace(event.Data.OutputLine); line != "" {
			r.LastOutput = line
		}

	case progress.EventCompleted:
		r.Status = StatusSuccess
		r.EndTime = event.Timestamp
		r.ExitCode = event.Data.ExitCode

	case progress.EventFailed:
		r.Status = StatusFailed
		r.EndTime = event.Timestamp
		r.ExitCode = event.Data.ExitCode

		if event.Data.Error != nil {
			r.ErrorMsg = event.Data.Error.Error()
		}
	}
}
