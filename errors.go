// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned by Spawn when every registry slot is taken.
	ErrCapacity = errors.New("corun: task registry is full")

	// ErrNotRegistered is returned when a task is not in the registry.
	ErrNotRegistered = errors.New("corun: task is not registered")

	// ErrNilEntry is returned by Spawn when no entry procedure is given.
	ErrNilEntry = errors.New("corun: nil entry procedure")

	// ErrNoRunnableTask is reported to the fatal handler when the
	// scheduler finds no task that is not dead.
	ErrNoRunnableTask = errors.New("corun: no runnable task")
)

// PanicError carries a panic raised by a task's entry procedure. It is
// re-raised by Wait in the waiting task.
type PanicError struct {
	Task  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("corun: task %q panicked: %v\n\n%s", e.Task, e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
