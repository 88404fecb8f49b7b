// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

var std *Runtime

func init() {
	std = New()
}

// Default returns the Runtime used by the package-level functions. Its
// bootstrap task stands for the program's main goroutine.
func Default() *Runtime { return std }

// Spawn calls Spawn on the default Runtime.
func Spawn(name string, entry func(arg any), arg any) (*Task, error) {
	return std.Spawn(name, entry, arg)
}

// Yield calls Yield on the default Runtime.
func Yield() { std.Yield() }

// Wait calls Wait on the default Runtime.
func Wait(t *Task) { std.Wait(t) }

// Current returns the task running on the default Runtime.
func Current() *Task { return std.Current() }
