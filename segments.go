// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "encoding/binary"

// segmentEntry is one offset/size pair in the segment table.
type segmentEntry struct {
	Offset int32
	Size   uint32
}

// Present reports whether the segment should be handed to its processor:
// offset >= 0 and size > 0, per spec §4.3.
func (s segmentEntry) Present() bool {
	return s.Offset >= 0 && s.Size > 0
}

// OffsetsTable is the decoded segment table: the offset/size of each
// variable-length region inside the r-code body, plus three auxiliary
// sub-table sizes.
type OffsetsTable struct {
	InitialValue segmentEntry
	Action       segmentEntry
	Ecode        segmentEntry
	Debug        segmentEntry

	IPACSSize uint16
	FrameSize uint16
	TextSize  uint16
}

// debugPresent reports whether the debug segment should be handed to its
// processor. Per spec §4.5 the debug offset check is strictly positive
// (unlike the other three, which allow offset == 0).
func (o OffsetsTable) debugPresent() bool {
	return o.Debug.Offset > 0 && o.Debug.Size > 0
}

// decodeSegmentTable reads exactly size bytes of buf as an OffsetsTable,
// per spec §4.3.
func decodeSegmentTable(buf []byte, order binary.ByteOrder, size uint16) (OffsetsTable, error) {
	var ot OffsetsTable

	if len(buf) < int(size) {
		return ot, shortRead("segment-table")
	}

	r := NewByteReader(buf[:size], order)

	read := func(offset int) (segmentEntry, error) {
		off, err := r.ReadI32(offset)
		if err != nil {
			return segmentEntry{}, shortRead("segment-table")
		}
		sz, err := r.ReadU32(offset + 16)
		if err != nil {
			return segmentEntry{}, shortRead("segment-table")
		}
		return segmentEntry{Offset: off, Size: sz}, nil
	}

	var err error
	if ot.InitialValue, err = read(0); err != nil {
		return ot, err
	}
	if ot.Action, err = read(4); err != nil {
		return ot, err
	}
	if ot.Ecode, err = read(8); err != nil {
		return ot, err
	}
	if ot.Debug, err = read(12); err != nil {
		return ot, err
	}

	if ot.IPACSSize, err = r.ReadU16(32); err != nil {
		return ot, shortRead("segment-table")
	}
	if ot.FrameSize, err = r.ReadU16(34); err != nil {
		return ot, shortRead("segment-table")
	}
	if ot.TextSize, err = r.ReadU16(36); err != nil {
		return ot, shortRead("segment-table")
	}

	return ot, nil
}
