// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

// coldStart starts a task that has never run. It records the top of
// the task's stack region as its initial stack pointer and launches the
// entry procedure on a fresh goroutine. That goroutine has no caller to
// return into: once the entry procedure is done, the trampoline hands
// control to the scheduler and the goroutine ends.
func (rt *Runtime) coldStart(t *Task) {
	if t.stack != nil {
		t.sp = t.stack.top()
	}
	go rt.trampoline(t)
}

// trampoline defers finish so that an entry procedure ending through
// runtime.Goexit still gives up the run token.
func (rt *Runtime) trampoline(t *Task) {
	defer rt.finish(t)
	t.run()
}
