// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"testing"
)

func TestDecodeCacheHit(t *testing.T) {
	data := assembleV11Procedure(binary.BigEndian)
	c := NewDecodeCache()

	first, err := c.Decode(data, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Decode(data, &Options{})
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("expected the same *RCodeInfo pointer on a cache hit")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestDecodeCacheDistinctInputs(t *testing.T) {
	c := NewDecodeCache()

	if _, err := c.Decode(assembleV11Procedure(binary.BigEndian), &Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(assembleV11Procedure(binary.LittleEndian), &Options{}); err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 for two distinct inputs", c.Len())
	}
}

func TestDecodeCachePropagatesErrors(t *testing.T) {
	c := NewDecodeCache()
	if _, err := c.Decode([]byte("not r-code"), &Options{}); err == nil {
		t.Fatal("expected an error decoding a malformed buffer")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after a failed decode", c.Len())
	}
}
