// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import (
	"container/heap"
	"fmt"
)

// registry is a fixed-capacity arena of task slots addressed by index.
// Free slots are handed out lowest index first.
type registry struct {
	slots []*Task
	free  freeList
	n     int
}

func newRegistry(capacity int) *registry {
	r := &registry{
		slots: make([]*Task, capacity),
		free:  make(freeList, capacity),
	}
	for i := range r.free {
		r.free[i] = i
	}
	// Ascending order already satisfies the heap property.
	return r
}

// register places t in the lowest free slot.
func (r *registry) register(t *Task) error {
	if r.free.Len() == 0 {
		return fmt.Errorf("register %q: %w", t.name, ErrCapacity)
	}
	i := heap.Pop(&r.free).(int)
	r.slots[i] = t
	t.slot = i
	r.n++
	return nil
}

// unregister clears the slot holding exactly t.
func (r *registry) unregister(t *Task) error {
	i := t.slot
	if i < 0 || i >= len(r.slots) || r.slots[i] != t {
		return fmt.Errorf("unregister %q: %w", t.name, ErrNotRegistered)
	}
	r.slots[i] = nil
	t.slot = -1
	heap.Push(&r.free, i)
	r.n--
	return nil
}

// at returns the task in slot i, or nil.
func (r *registry) at(i int) *Task { return r.slots[i] }

func (r *registry) len() int { return r.n }

func (r *registry) cap() int { return len(r.slots) }

// freeList is a min-heap of free slot indices.
type freeList []int

func (f freeList) Len() int           { return len(f) }
func (f freeList) Less(i, j int) bool { return f[i] < f[j] }
func (f freeList) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *freeList) Push(x any)        { *f = append(*f, x.(int)) }

func (f *freeList) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
