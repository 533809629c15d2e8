// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is a real-time update from a running command.
type Event struct {
	Label     string    // Label of the command that emitted the event
	Type      EventType // What happened
	Message   string    // Human-readable status message
	Timestamp time.Time // When the event occurred
	Data      EventData // Type-specific data
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventStarted indicates a command has begun execution.
	EventStarted EventType = iota
	// EventProgress is a periodic "still running" notification.
	EventProgress
	// EventOutput carries one line of stdout or stderr.
	EventOutput
	// EventCompleted indicates successful completion.
	EventCompleted
	// EventFailed indicates the command failed.
	EventFailed
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventProgress:
		return "progress"
	case EventOutput:
		return "output"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventData contains type-specific information for progress events.
type EventData struct {
	// For EventStarted
	CommandLine string // The command line of the process, executable first

	// For EventOutput and EventProgress
	OutputLine string // The output line without its line terminator, the latest one for EventProgress
	IsStderr   bool   // True if the line came from stderr

	// For EventCompleted/EventFailed
	ExitCode int   // Process exit code
	Error    error // Error if the command failed

	// For EventProgress
	Elapsed time.Duration // Time since the command started
}

// NewOutputEvent builds an EventOutput for one line.
func NewOutputEvent(label, line string, isStderr bool) Event {
	return Event{
		Label:     label,
		Type:      EventOutput,
		Timestamp: time.Now(),
		Data: EventData{
			OutputLine: line,
			IsStderr:   isStderr,
		},
	}
}
