// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"testing"
)

func buildSegmentTable(order binary.ByteOrder, initial, action, ecode, debug int32, sizes [4]uint32) []byte {
	buf := make([]byte, 38)
	offsets := [4]int32{initial, action, ecode, debug}
	for i, off := range offsets {
		order.PutUint32(buf[i*4:], uint32(off))
		order.PutUint32(buf[16+i*4:], sizes[i])
	}
	order.PutUint16(buf[32:], 1)
	order.PutUint16(buf[34:], 2)
	order.PutUint16(buf[36:], 3)
	return buf
}

func TestDecodeSegmentTable(t *testing.T) {
	buf := buildSegmentTable(binary.BigEndian, 0, 10, -1, 0, [4]uint32{4, 4, 0, 0})

	ot, err := decodeSegmentTable(buf, binary.BigEndian, uint16(len(buf)))
	if err != nil {
		t.Fatal(err)
	}
	if !ot.InitialValue.Present() {
		t.Error("expected InitialValue present (offset 0, size 4)")
	}
	if !ot.Action.Present() {
		t.Error("expected Action present")
	}
	if ot.Ecode.Present() {
		t.Error("expected Ecode absent (negative offset)")
	}
	if ot.debugPresent() {
		t.Error("expected Debug absent (offset 0 is not strictly positive)")
	}
	if ot.IPACSSize != 1 || ot.FrameSize != 2 || ot.TextSize != 3 {
		t.Errorf("sub-table sizes wrong: %+v", ot)
	}
}

func TestDecodeSegmentTableShortRead(t *testing.T) {
	buf := buildSegmentTable(binary.BigEndian, 0, 0, 0, 0, [4]uint32{0, 0, 0, 0})

	if _, err := decodeSegmentTable(buf[:10], binary.BigEndian, uint16(len(buf))); err == nil {
		t.Fatal("expected an error on truncated segment table")
	}
}
