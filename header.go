// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
)

// Magic numbers at offset 0, read as big-endian u32, that select the byte
// order under which the rest of the header (and the whole stream) is
// interpreted.
const (
	MagicBigEndian    = 0x56CED309
	MagicLittleEndian = 0x09D3CE56
)

// HeaderSize is the size in bytes of the primary r-code header.
const HeaderSize = 68

// V12TailSize is the size in bytes of the extra header tail present only
// for version_major >= 1200.
const V12TailSize = 16

// versionMajorMask isolates the low 14 bits of the version word.
const versionMajorMask = 0x3FFF

// is64BitFlag is bit 14 of the version word.
const is64BitFlag = 0x4000

// HeaderInfo is the decoded fixed-size prefix of an r-code stream.
type HeaderInfo struct {
	Order            binary.ByteOrder
	Version          uint16
	VersionMajor     uint16
	Is64Bit          bool
	Timestamp        int64
	DigestOffset     uint16
	SegmentTableSize uint16
	SignatureSize    uint32
	TypeBlockSize    uint32
	RCodeSize        uint32
}

// decodeHeader reads HeaderSize bytes (plus, for v12, V12TailSize more)
// from raw and produces a HeaderInfo and the number of bytes consumed, per
// spec §4.2.
func decodeHeader(raw []byte) (HeaderInfo, int, error) {
	var hdr HeaderInfo

	if len(raw) < HeaderSize {
		return hdr, 0, shortRead("header")
	}

	magic := binary.BigEndian.Uint32(raw[0:4])
	switch magic {
	case MagicBigEndian:
		hdr.Order = binary.BigEndian
	case MagicLittleEndian:
		hdr.Order = binary.LittleEndian
	default:
		return hdr, 0, invalidFormat("magic")
	}

	br := NewByteReader(raw[:HeaderSize], hdr.Order)

	version, err := br.ReadU16(14)
	if err != nil {
		return hdr, 0, shortRead("header")
	}
	hdr.Version = version
	hdr.VersionMajor = version & versionMajorMask
	hdr.Is64Bit = version&is64BitFlag != 0

	if hdr.VersionMajor < 1100 {
		return hdr, 0, unsupportedVersion(hdr.VersionMajor)
	}

	consumed := HeaderSize

	if hdr.VersionMajor >= 1200 {
		if len(raw) < HeaderSize+V12TailSize {
			return hdr, 0, shortRead("v12-tail")
		}
		tail := NewByteReader(raw[HeaderSize:HeaderSize+V12TailSize], hdr.Order)

		ts, _ := br.ReadU32(4)
		hdr.Timestamp = int64(ts)

		digestOffset, _ := br.ReadU16(22)
		hdr.DigestOffset = digestOffset

		segTableSize, _ := br.ReadU16(0x1E)
		hdr.SegmentTableSize = segTableSize

		sigSize, _ := br.ReadU32(56)
		hdr.SignatureSize = sigSize

		typeBlockSize, _ := br.ReadU32(60)
		hdr.TypeBlockSize = typeBlockSize

		rcodeSize, err := tail.ReadU32(12)
		if err != nil {
			return hdr, 0, shortRead("v12-tail")
		}
		hdr.RCodeSize = rcodeSize

		consumed += V12TailSize
	} else {
		ts, _ := br.ReadU32(4)
		hdr.Timestamp = int64(ts)

		digestOffset, _ := br.ReadU16(10)
		hdr.DigestOffset = digestOffset

		segTableSize, _ := br.ReadU16(0x1E)
		hdr.SegmentTableSize = segTableSize

		sigSize, _ := br.ReadU32(56)
		hdr.SignatureSize = sigSize

		typeBlockSize, _ := br.ReadU32(60)
		hdr.TypeBlockSize = typeBlockSize

		rcodeSize, err := br.ReadU32(64)
		if err != nil {
			return hdr, 0, shortRead("header")
		}
		hdr.RCodeSize = rcodeSize
	}

	if hdr.RCodeSize == 0 {
		return hdr, 0, invalidFormat("rcode body size must be positive")
	}

	return hdr, consumed, nil
}
