// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"sync"
)

// Task is a handle on a started command. It settles exactly once,
// either with results or with an error.
type Task struct {
	label   string
	done    chan struct{}
	once    sync.Once
	results Results
	err     error
}

func newTask(label string) *Task {
	return &Task{
		label: label,
		done:  make(chan struct{}),
	}
}

// Label returns the label of the command behind the task.
func (t *Task) Label() string {
	return t.label
}

// Done is closed when the task has settled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task settles and returns its outcome.
func (t *Task) Wait() (Results, error) {
	<-t.done

	return t.results, t.err
}

func (t *Task) settle(results Results, err error) {
	t.once.Do(func() {
		t.results = results
		t.err = err
		close(t.done)
	})
}
