// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

// savedState is the suspension point of a task. The goroutine of a
// suspended task keeps its own frames, so saving the state amounts to
// parking it on a one-slot wake channel. The run token is a value in
// that channel: whoever resumes a state deposits it, and the parked
// goroutine picks it up and continues right after its park call.
//
// At most one token is ever in flight across a Runtime.
type savedState struct {
	wake chan struct{}
}

func newSavedState() savedState {
	return savedState{wake: make(chan struct{}, 1)}
}

// park blocks the calling goroutine until the state is resumed.
func (s *savedState) park() {
	<-s.wake
}

// resume hands the run token to the goroutine parked on s. It does not
// block, so a task may resume its own state right before parking.
func (s *savedState) resume() {
	s.wake <- struct{}{}
}
