// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"sync"
)

// Reporter receives progress events.
// Report may be called concurrently from several running commands.
type Reporter interface {
	// Report delivers one event. Implementations must not retain event data they do not own.
	Report(event Event)
	// Close signals that no more events will be sent and cleans up resources.
	Close()
}

// Listener consumes events forwarded by a ChannelReporter.
type Listener interface {
	OnEvent(event Event)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(event Event)

// Report calls f(event).
func (f ReporterFunc) Report(event Event) {
	f(event)
}

// Close implements Reporter and does nothing.
func (f ReporterFunc) Close() {}

// NullReporter discards every event.
type NullReporter struct{}

// Report implements Reporter.
func (NullReporter) Report(Event) {}

// Close implements Reporter.
func (NullReporter) Close() {}

// ChannelReporter implements Reporter using a Go channel.
// Report blocks until the event is queued or the reporter is closed, so a
// slow listener slows producers down rather than losing lines.
type ChannelReporter struct {
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewChannelReporter creates a new ChannelReporter with the specified buffer size.
func NewChannelReporter(ctx context.Context, bufferSize int) *ChannelReporter {
	reporterCtx, cancel := context.WithCancel(ctx)

	return &ChannelReporter{
		ch:     make(chan Event, bufferSize),
		ctx:    reporterCtx,
		cancel: cancel,
	}
}

// Report implements Reporter.
func (cr *ChannelReporter) Report(event Event) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.closed {
		return
	}

	select {
	case cr.ch <- event:
	case <-cr.ctx.Done():
	}
}

// Close implements Reporter. Events already queued are still delivered to a running listener.
func (cr *ChannelReporter) Close() {
	cr.cancel()

	cr.mu.Lock()
	if !cr.closed {
		cr.closed = true
		close(cr.ch)
	}
	cr.mu.Unlock()

	cr.wg.Wait()
}

// Listen forwards events to listener on a background goroutine until the reporter is closed.
func (cr *ChannelReporter) Listen(listener Listener) {
	cr.wg.Add(1)

	go func() {
		defer cr.wg.Done()

		for event := range cr.ch {
			listener.OnEvent(event)
		}
	}()
}
