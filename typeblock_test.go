// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"testing"
)

// buildV11ClassBlock builds a minimal v11 type block describing a class
// "rssw.MyClass" with one public method `foo(INTEGER) -> CHARACTER`,
// matching spec §8 seed scenario 2.
func buildV11ClassBlock(order binary.ByteOrder) []byte {
	const (
		nameOff   = 57
		methodOff = 70
	)

	block := make([]byte, 57+13+4)

	order.PutUint32(block[v11HdrNameOffset:], nameOff)
	order.PutUint32(block[v11HdrParentNameOffset:], 0)
	order.PutUint32(block[v11HdrFlags:], uint32(FlagPublic))
	order.PutUint16(block[v11HdrInterfaceCount:], 0)
	order.PutUint16(block[v11HdrMethodCount:], 1)
	order.PutUint16(block[v11HdrPropertyCount:], 0)
	order.PutUint16(block[v11HdrVariableCount:], 0)
	order.PutUint16(block[v11HdrEventCount:], 0)
	order.PutUint16(block[v11HdrTableCount:], 0)

	cursor := v11HeaderSize
	order.PutUint32(block[cursor:], methodOff)                    // method name offset
	order.PutUint32(block[cursor+4:], uint32(FlagPublic))         // access
	block[cursor+8] = byte(TypeCharacter)                         // return primitive
	order.PutUint32(block[cursor+9:], 0)                          // return class name offset
	order.PutUint16(block[cursor+13:], 1)                         // param count
	cursor += v11MethodStride

	order.PutUint32(block[cursor:], 0)          // param name offset (empty)
	block[cursor+4] = byte(TypeInteger)         // param primitive
	order.PutUint32(block[cursor+5:], 0)        // param class name offset
	block[cursor+9] = byte(ModeInput)           // param mode
	order.PutUint32(block[cursor+10:], 0)       // param extent
	cursor += paramStride

	copy(block[nameOff:], "rssw.MyClass\x00")
	copy(block[methodOff:], "foo\x00")

	return block
}

func TestDecodeTypeBlockV11Class(t *testing.T) {
	block := buildV11ClassBlock(binary.BigEndian)

	ti, err := decodeTypeBlockV11(block, binary.BigEndian, false, CharsetUTF8)
	if err != nil {
		t.Fatal(err)
	}

	if ti.Name() != "rssw.MyClass" {
		t.Errorf("Name() = %q, want rssw.MyClass", ti.Name())
	}
	if len(ti.Methods()) != 1 {
		t.Fatalf("Methods() len = %d, want 1", len(ti.Methods()))
	}

	m := ti.Methods()[0]
	if m.Name != "foo" {
		t.Errorf("method name = %q, want foo", m.Name)
	}
	if m.ReturnType.Primitive != TypeCharacter {
		t.Errorf("return type = %v, want CHARACTER", m.ReturnType.Primitive)
	}
	if len(m.Parameters) != 1 {
		t.Fatalf("Parameters len = %d, want 1", len(m.Parameters))
	}
	if m.Parameters[0].Type.Primitive != TypeInteger {
		t.Errorf("param type = %v, want INTEGER", m.Parameters[0].Type.Primitive)
	}
	if m.Parameters[0].Mode != ModeInput {
		t.Errorf("param mode = %v, want INPUT", m.Parameters[0].Mode)
	}
}

func TestDecodeTypeBlockDispatch(t *testing.T) {
	block := buildV11ClassBlock(binary.BigEndian)
	hdr := HeaderInfo{Order: binary.BigEndian, VersionMajor: 1100}

	ti, err := decodeTypeBlock(block, hdr, CharsetUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if ti.Name() != "rssw.MyClass" {
		t.Errorf("Name() = %q, want rssw.MyClass", ti.Name())
	}
}

func TestResolveStringZeroOffsetIsEmpty(t *testing.T) {
	s, err := resolveString(make([]byte, 10), 0, CharsetUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if s != "" {
		t.Errorf("got %q, want empty string", s)
	}
}

func TestResolveStringOutOfBounds(t *testing.T) {
	_, err := resolveString(make([]byte, 10), 100, CharsetUTF8)
	if err == nil {
		t.Fatal("expected an error for an out-of-bounds string offset")
	}
}
