// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestByteReaderIntegers(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := NewByteReader(buf, binary.BigEndian)

	if v, err := r.ReadU16(0); err != nil || v != 0x0102 {
		t.Fatalf("ReadU16(0) = %#x, %v", v, err)
	}
	if v, err := r.ReadU32(0); err != nil || v != 0x01020304 {
		t.Fatalf("ReadU32(0) = %#x, %v", v, err)
	}
	if v, err := r.ReadU64(0); err != nil || v != 0x0102030405060708 {
		t.Fatalf("ReadU64(0) = %#x, %v", v, err)
	}
}

func TestByteReaderOutOfBounds(t *testing.T) {
	r := NewByteReader([]byte{0x01, 0x02}, binary.BigEndian)

	if _, err := r.ReadU32(0); !errors.Is(err, ErrOutsideBoundary) {
		t.Fatalf("expected ErrOutsideBoundary, got %v", err)
	}
	if _, err := r.ReadU16(1); !errors.Is(err, ErrOutsideBoundary) {
		t.Fatalf("expected ErrOutsideBoundary, got %v", err)
	}
}

func TestByteReaderSignedOffsets(t *testing.T) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, 0xFFFFFFFF)
	r := NewByteReader(buf, binary.BigEndian)

	v, err := r.ReadI32(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 {
		t.Errorf("ReadI32(0) = %d, want -1", v)
	}
}

func TestByteReaderCStringDefault(t *testing.T) {
	buf := append([]byte("hello"), 0x00, 'X')
	r := NewByteReader(buf, binary.BigEndian)

	s, consumed, err := r.ReadCString(0, CharsetDefault)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" {
		t.Errorf("got %q, want %q", s, "hello")
	}
	if consumed != 6 {
		t.Errorf("consumed = %d, want 6", consumed)
	}
}

func TestByteReaderCStringUnterminated(t *testing.T) {
	buf := []byte("hello")
	r := NewByteReader(buf, binary.BigEndian)

	s, consumed, err := r.ReadCString(0, CharsetUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" || consumed != 5 {
		t.Errorf("got (%q, %d), want (%q, 5)", s, consumed, "hello")
	}
}

func TestByteReaderCStringEmpty(t *testing.T) {
	buf := []byte{0x00}
	r := NewByteReader(buf, binary.BigEndian)

	s, consumed, err := r.ReadCString(0, CharsetUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if s != "" || consumed != 1 {
		t.Errorf("got (%q, %d), want (\"\", 1)", s, consumed)
	}
}

func TestByteReaderAsciiHex(t *testing.T) {
	r := NewByteReader([]byte("00FF"), binary.BigEndian)

	v, err := r.ReadAsciiHex(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x00FF {
		t.Errorf("got %#x, want 0xFF", v)
	}
}

func TestByteReaderAsciiHexInvalid(t *testing.T) {
	r := NewByteReader([]byte("ZZZZ"), binary.BigEndian)

	if _, err := r.ReadAsciiHex(0, 4); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
