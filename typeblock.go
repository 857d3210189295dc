// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "encoding/binary"

// This file holds the layout contract shared by the v11 and v12 type-block
// decoders (spec §4.6). The exact record strides below are this module's
// own layout tables — the source format's v12 strides aren't fully
// documented anywhere in spec.md, which explicitly leaves that detail to
// be "validated against a fixture corpus and recorded... in code" (spec
// §9, Open Questions). Both decoders share:
//
//   - a fixed leading record (the v11Hdr*/v12Hdr* layout constants in
//     typeblock_v11.go and typeblock_v12.go),
//   - an interfaces array of string-pool offsets,
//   - five member-kind arrays, in a version-specific order, each a run of
//     fixed-stride records followed immediately by that kind's
//     variable-stride data (parameters, fields, indexes, accessors),
//   - a string pool: every string-pool offset used above is an ABSOLUTE
//     byte offset from the start of the type block, and the tail of the
//     block (whatever bytes the member arrays don't occupy) is exactly
//     that pool.

// memberKind names the five member kinds whose arrays appear in the type
// block.
type memberKind int

const (
	kindMethod memberKind = iota
	kindProperty
	kindVariable
	kindEvent
	kindTable
)

// wordSize returns 4 or 8 depending on is64Bit, per spec §4.6 ("widen
// pointer-sized fields to 8 bytes when is_64_bit is set, else 4 bytes").
func wordSize(is64Bit bool) int {
	if is64Bit {
		return 8
	}
	return 4
}

// readWord reads a "word" field (widened per is64Bit) at offset.
func readWord(r *ByteReader, offset int, is64Bit bool) (uint64, error) {
	if is64Bit {
		return r.ReadU64(offset)
	}
	v, err := r.ReadU32(offset)
	return uint64(v), err
}

// resolveString resolves a string-pool offset against the whole type-block
// buffer. Offset 0 is the empty string (spec §4.6: "Treat a zero
// string-offset as the empty string, not a fault"); any other offset must
// land inside the block or decoding fails with InvalidFormat.
func resolveString(block []byte, offset uint32, charset Charset) (string, error) {
	if offset == 0 {
		return "", nil
	}
	if int(offset) >= len(block) {
		return "", invalidFormat("string-pool offset out of bounds")
	}
	// ReadCString never performs a multi-byte integer read, so the byte
	// order given here is irrelevant.
	r := NewByteReader(block, binary.BigEndian)
	s, _, err := r.ReadCString(int(offset), charset)
	if err != nil {
		return "", invalidFormat("string-pool offset out of bounds")
	}
	return s, nil
}

// decodeTypeBlock dispatches to the v11 or v12 decoder per spec §4.6 and
// produces the shared *TypeInfo shape from either variant.
func decodeTypeBlock(block []byte, hdr HeaderInfo, charset Charset) (*TypeInfo, error) {
	if hdr.VersionMajor >= 1200 {
		return decodeTypeBlockV12(block, hdr.Order, hdr.Is64Bit, charset)
	}
	return decodeTypeBlockV11(block, hdr.Order, hdr.Is64Bit, charset)
}
