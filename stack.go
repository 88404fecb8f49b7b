// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import "unsafe"

// stackAlign is the call-boundary alignment of the stack pointer.
const stackAlign = 16

// stack is a task's private, fixed-size memory region. The task owns
// it from Spawn until Wait releases it.
type stack struct {
	mem []byte
}

func newStack(size int) (*stack, error) {
	mem, err := allocStack(size)
	if err != nil {
		return nil, err
	}
	clear(mem)
	return &stack{mem: mem}, nil
}

// top returns the highest address inside the region, rounded down to
// the call-boundary alignment.
func (s *stack) top() uintptr {
	if len(s.mem) == 0 {
		return 0
	}
	last := uintptr(unsafe.Pointer(&s.mem[len(s.mem)-1]))
	return last &^ (stackAlign - 1)
}

// release frees the region. Later calls do nothing.
func (s *stack) release() error {
	if s.mem == nil {
		return nil
	}
	mem := s.mem
	s.mem = nil
	return freeStack(mem)
}
