// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package corun

func allocStack(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func freeStack([]byte) error { return nil }
