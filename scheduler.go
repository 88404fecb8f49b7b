// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import "fmt"

// pick returns the first task that is not dead, scanning from the
// cursor to the end of the registry and then from the start back up to
// the cursor. Waiting tasks are as runnable as running ones. The cursor
// is left just past the chosen slot.
func (rt *Runtime) pick() *Task {
	n := rt.reg.cap()
	for k := 0; k < n; k++ {
		i := (rt.cursor + k) % n
		if t := rt.reg.at(i); t != nil && t.status != StatusDead {
			rt.cursor = (i + 1) % n
			return t
		}
	}

	err := fmt.Errorf("scan of %d slots from %d: %w", n, rt.cursor, ErrNoRunnableTask)
	rt.log.Error("scheduler invariant violated", "err", err)
	rt.opts.fatal(err)
	panic(err)
}

// dispatch makes next the current task and transfers the run token to
// it. The caller must park or exit right after dispatch returns and
// must not touch runtime state again until it is resumed.
func (rt *Runtime) dispatch(next *Task) {
	rt.log.Debug("switch to task", "task", next.name, "status", next.status)

	prev := next.status
	next.status = StatusRunning
	rt.current = next

	if prev == StatusNew {
		rt.coldStart(next)
		return
	}
	next.saved.resume()
}

// schedule runs one scheduling round.
func (rt *Runtime) schedule() {
	rt.dispatch(rt.pick())
}

// finish runs on the goroutine of a task whose entry procedure has just
// completed. It marks the task dead and continues with the next round
// instead of returning into a caller.
func (rt *Runtime) finish(t *Task) {
	t.status = StatusDead
	if t.panicked != nil {
		rt.log.Debug("task panicked", "task", t.name, "panic", t.panicked.Value)
	}
	if t.waiter != nil {
		rt.log.Debug("releasing waiter", "task", t.name, "waiter", t.waiter.name)
	} else {
		rt.log.Debug("task finished", "task", t.name)
	}
	rt.schedule()
}
