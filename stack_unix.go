// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package corun

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// allocStack maps an anonymous private region. The kernel hands it out
// zero-filled and it lives outside the Go heap.
func allocStack(size int) ([]byte, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap task stack of %d bytes: %w", size, err)
	}
	return mem, nil
}

func freeStack(mem []byte) error {
	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("munmap task stack: %w", err)
	}
	return nil
}
