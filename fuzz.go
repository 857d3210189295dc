// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// Fuzz is a go-fuzz entry point: it exercises NewBytes against arbitrary
// input and is expected to survive every malformed artifact it disagrees
// with by returning an error, never a panic.
func Fuzz(data []byte) int {
	info, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	defer info.Close()
	return 1
}
