// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import (
	"fmt"
	"runtime/debug"
)

// Status is the lifecycle state of a task.
//
// Transitions only move forward: New, then Running, then any number of
// Running/Waiting swaps, then Dead.
type Status int

const (
	StatusNew Status = iota + 1
	StatusRunning
	StatusWaiting
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusRunning:
		return "running"
	case StatusWaiting:
		return "waiting"
	case StatusDead:
		return "dead"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Task is the control record of one cooperatively scheduled task.
type Task struct {
	name  string
	entry func(arg any)
	arg   any

	status Status
	waiter *Task
	saved  savedState
	stack  *stack
	sp     uintptr

	// slot is the registry index, or -1 when unregistered.
	slot int

	panicked *PanicError
}

func newTask(name string, entry func(any), arg any, st *stack) *Task {
	t := &Task{
		name:   name,
		entry:  entry,
		arg:    arg,
		status: StatusNew,
		saved:  newSavedState(),
		stack:  st,
		slot:   -1,
	}
	if entry == nil {
		t.status = StatusRunning
	}
	return t
}

// Name returns the label given at spawn time.
func (t *Task) Name() string { return t.name }

// Status returns the task's current lifecycle state.
func (t *Task) Status() Status { return t.status }

// Stack returns the task's private stack region. The task may use it
// as scratch memory while it is alive; it is unmapped by Wait. The
// bootstrap task has none.
func (t *Task) Stack() []byte {
	if t.stack == nil {
		return nil
	}
	return t.stack.mem
}

// StackPointer returns the top of the task's stack region, aligned
// down to 16 bytes, as recorded when the task was started. It is zero
// until then. The entry procedure itself runs on a goroutine stack
// managed by the Go runtime, so this is not the live stack pointer and
// the region is never used as the execution stack.
func (t *Task) StackPointer() uintptr { return t.sp }

func (t *Task) String() string {
	return fmt.Sprintf("%s(%s)", t.name, t.status)
}

// run calls the entry procedure and records a panic instead of letting
// it tear down the process.
func (t *Task) run() {
	defer func() {
		if r := recover(); r != nil {
			t.panicked = &PanicError{Task: t.name, Value: r, Stack: debug.Stack()}
		}
	}()
	t.entry(t.arg)
}

// release frees the task's stack region.
func (t *Task) release() error {
	if t.stack == nil {
		return nil
	}
	return t.stack.release()
}
