// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import (
	"fmt"
	"log/slog"
)

// Runtime is the scheduler context: the task registry, the round-robin
// cursor and the current task. Only the task holding the run token
// touches it, so it needs no locking.
type Runtime struct {
	opts options
	log  *slog.Logger

	reg     *registry
	cursor  int
	current *Task
	main    *Task
}

// New creates a Runtime. Its bootstrap task, named "main", stands for
// the goroutine that drives the Runtime from outside its tasks.
func New(opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rt := &Runtime{
		opts: o,
		log:  o.logger,
		reg:  newRegistry(o.capacity),
	}

	boot := newTask("main", nil, nil, nil)
	if err := rt.reg.register(boot); err != nil {
		// Capacity is at least one, so this cannot happen.
		panic(err)
	}
	rt.main, rt.current = boot, boot

	rt.log.Debug("runtime initialized", "capacity", o.capacity, "stack_size", o.stackSize)
	return rt
}

// Spawn creates a task that will call entry(arg) on its own goroutine
// and registers it in the first free slot. Before returning, the caller
// yields once so the new task gets a chance to start.
//
// Spawn fails with an error wrapping ErrCapacity when the registry is
// full; the registry is left as it was.
func (rt *Runtime) Spawn(name string, entry func(arg any), arg any) (*Task, error) {
	if entry == nil {
		return nil, fmt.Errorf("spawn %q: %w", name, ErrNilEntry)
	}
	if rt.reg.len() >= rt.reg.cap() {
		return nil, fmt.Errorf("spawn %q: %w", name, ErrCapacity)
	}

	st, err := newStack(rt.opts.stackSize)
	if err != nil {
		return nil, fmt.Errorf("spawn %q: %w", name, err)
	}

	t := newTask(name, entry, arg, st)
	if err := rt.reg.register(t); err != nil {
		_ = st.release()
		return nil, fmt.Errorf("spawn %q: %w", name, err)
	}
	rt.log.Debug("task initialized", "task", name, "slot", t.slot)

	rt.Yield()
	return t, nil
}

// Yield suspends the calling task and runs the scheduler. It returns
// once the scheduler picks the calling task again.
func (rt *Runtime) Yield() {
	cur := rt.current
	rt.schedule()
	cur.saved.park()
}

// Wait blocks the calling task until t is dead, then removes t from the
// registry and releases its stack. If t's entry procedure panicked, Wait
// panics with the corresponding *PanicError after the cleanup.
//
// At most one task may wait on t, and t must not be the caller or wait
// on the caller, directly or through other tasks. None of this is
// checked.
func (rt *Runtime) Wait(t *Task) {
	cur := rt.current
	rt.log.Debug("task waiting", "task", cur.name, "target", t.name)

	cur.status = StatusWaiting
	t.waiter = cur
	for t.status != StatusDead {
		rt.Yield()
	}
	cur.status = StatusRunning

	if err := rt.reg.unregister(t); err != nil {
		rt.log.Warn("wait cleanup", "err", err)
	}
	if err := t.release(); err != nil {
		rt.log.Warn("wait cleanup", "err", err)
	}
	t.waiter = nil
	rt.log.Debug("wait over", "task", cur.name, "target", t.name)

	if t.panicked != nil {
		panic(t.panicked)
	}
}

// Current returns the task holding the run token.
func (rt *Runtime) Current() *Task { return rt.current }

// Main returns the bootstrap task.
func (rt *Runtime) Main() *Task { return rt.main }

// Len returns the number of registered tasks, the bootstrap task and
// dead tasks not yet waited for included.
func (rt *Runtime) Len() int { return rt.reg.len() }

// Cap returns the registry capacity.
func (rt *Runtime) Cap() int { return rt.reg.cap() }
