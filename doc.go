// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

// Package corun provides a cooperative, single-runner task runtime on
// top of Go's goroutines.
//
// A [Runtime] owns a fixed-capacity registry of tasks. Each task has a
// private stack region and runs on its own goroutine. At any instant
// exactly one task holds the run token. A task gives up the token only
// by calling [Runtime.Yield], [Runtime.Wait] or [Runtime.Spawn]. The
// runtime then picks the next runnable task with a plain round-robin
// scan of the registry. Nothing is preempted. A task that never yields
// starves every other task.
//
// The goroutine that drives a Runtime from outside its tasks plays the
// role of its bootstrap task, named "main". It must be the only such
// goroutine for that Runtime.
//
// The following are caller obligations and are not checked: waiting
// twice on the same task, a task waiting on itself, and cycles of
// tasks waiting on each other. Each leads to undefined behaviour.
//
// The package-level functions operate on a default Runtime that is
// created when the package is initialized.
//
// Based on the wonderful [blog post] shared by Rus Cox.
//
// [blog post]: https://research.swtch.com/coro
package corun
