// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/matt-FFFFFF/gorobocopy/internal/runbatch"
)

const (
	durationRounding = 100 * time.Millisecond
	minOutputWidth   = 20
	defaultWidth     = 80
	ellipsis         = "..."
)

// ProgressEventMsg wraps a progress event for the tea framework.
type ProgressEventMsg struct {
	Event progress.Event
}

// CommandCompletedMsg indicates that every robocopy process has finished.
type CommandCompletedMsg struct {
	Results runbatch.Results
	Err     error
}

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ProgressEventMsg:
		m.processEvent(msg.Event)
		return m, nil

	case CommandCompletedMsg:
		m.completed = true
		m.results = msg.Results
		m.err = msg.Err

		return m, nil

	case spinner.TickMsg:
		if m.completed {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("gorobocopy"))
	b.WriteString("\n")

	now := m.now()
	for _, r := range m.rows {
		m.renderRow(&b, r, now)
	}

	if m.completed {
		b.WriteString("\n")

		if m.err != nil {
			b.WriteString(m.styles.Failed.Render("✗ Copy completed with errors"))
		} else {
			b.WriteString(m.styles.Success.Render(fmt.Sprintf("✓ Copied to %d destination(s)", len(m.results))))
		}

		b.WriteString("\n")
	}

	help := "'q' to stop and quit"
	if m.completed {
		help = "'q' to quit and return to terminal"
	}

	b.WriteString(m.styles.Help.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderRow(b *strings.Builder, r *Row, now time.Time) {
	var icon, name string

	switch r.Status {
	case StatusPending:
		icon = "·"
		name = m.styles.Pending.Render(r.Label)
	case StatusRunning:
		icon = m.spinner.View()
		name = m.styles.Running.Render(r.Label)
	case StatusSuccess:
		icon = m.styles.Success.Render("✓")
		name = m.styles.Success.Render(r.Label)
	case StatusFailed:
		icon = m.styles.Failed.Render("✗")
		name = m.styles.Failed.Render(r.Label)
	}

	b.WriteString(icon)
	b.WriteString(" ")
	b.WriteString(name)

	if d := r.Elapsed(now); d > 0 {
		b.WriteString(m.styles.Output.Render(fmt.Sprintf(" (%v)", d.Round(durationRounding))))
	}

	detail := ""
	style := m.styles.Output

	switch r.Status {
	case StatusRunning:
		detail = r.LastOutput
	case StatusSuccess:
		detail = fmt.Sprintf("exit code %d", r.ExitCode)
	case StatusFailed:
		detail = firstLine(r.ErrorMsg)
		style = m.styles.Error
	}

	if detail != "" {
		width := m.width
		if width <= 0 {
			width = defaultWidth
		}

		b.WriteString("\n    ")
		b.WriteString(style.Render(truncate(detail, max(width-4, minOutputWidth))))
	}

	b.WriteString("\n")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	runes := []rune(s)
	if width <= len(ellipsis) {
		return string(runes[:width])
	}

	return string(runes[:width-len(ellipsis)]) + ellipsis
}
