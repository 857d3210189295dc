// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Charset selects how ByteReader.ReadCString decodes the bytes preceding a
// NUL terminator. The OpenEdge compiler emits r-code under the platform's
// default 8-bit codepage unless the caller asks for UTF-8.
type Charset int

const (
	// CharsetDefault decodes bytes as Windows-1252, the codepage the
	// OpenEdge compiler falls back to on the platforms it targets.
	CharsetDefault Charset = iota

	// CharsetUTF8 decodes bytes as UTF-8, the recommended override for
	// artifacts compiled with -cpinternal utf-8.
	CharsetUTF8
)

// ByteReader is a bounds-checked cursor over a byte slice with endian-aware
// integer reads. It carries no mutable cursor state beyond the byte order:
// every read takes an explicit offset, so a single ByteReader can service
// concurrent reads of the same underlying buffer.
type ByteReader struct {
	buf   []byte
	order binary.ByteOrder
}

// NewByteReader returns a ByteReader over buf using order for all
// multi-byte reads.
func NewByteReader(buf []byte, order binary.ByteOrder) *ByteReader {
	return &ByteReader{buf: buf, order: order}
}

// Len returns the size of the underlying buffer.
func (r *ByteReader) Len() int { return len(r.buf) }

// Order returns the byte order the reader was constructed with.
func (r *ByteReader) Order() binary.ByteOrder { return r.order }

// Bytes returns the underlying buffer. Callers must not mutate it.
func (r *ByteReader) Bytes() []byte { return r.buf }

func (r *ByteReader) bounds(offset, width int) error {
	if offset < 0 || width < 0 || offset+width > len(r.buf) {
		return ErrOutsideBoundary
	}
	return nil
}

// ReadU16 reads an unsigned 16-bit integer at offset.
func (r *ByteReader) ReadU16(offset int) (uint16, error) {
	if err := r.bounds(offset, 2); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.buf[offset:]), nil
}

// ReadU32 reads an unsigned 32-bit integer at offset.
func (r *ByteReader) ReadU32(offset int) (uint32, error) {
	if err := r.bounds(offset, 4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.buf[offset:]), nil
}

// ReadU64 reads an unsigned 64-bit integer at offset.
func (r *ByteReader) ReadU64(offset int) (uint64, error) {
	if err := r.bounds(offset, 8); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.buf[offset:]), nil
}

// ReadI32 reads a signed 32-bit integer at offset. Segment-table offsets are
// stored this way so a negative value can mean "segment absent".
func (r *ByteReader) ReadI32(offset int) (int32, error) {
	v, err := r.ReadU32(offset)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadI16 reads a signed 16-bit integer at offset.
func (r *ByteReader) ReadI16(offset int) (int16, error) {
	v, err := r.ReadU16(offset)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadCString scans forward from offset to the first 0x00 byte (or the end
// of the buffer) and decodes the preceding bytes under charset. It returns
// the decoded string and the number of bytes consumed including the
// terminating NUL, if one was found.
func (r *ByteReader) ReadCString(offset int, charset Charset) (string, int, error) {
	if offset < 0 || offset > len(r.buf) {
		return "", 0, ErrOutsideBoundary
	}

	end := offset
	for end < len(r.buf) && r.buf[end] != 0x00 {
		end++
	}

	consumed := end - offset
	if end < len(r.buf) {
		consumed++ // include the NUL
	}

	raw := r.buf[offset:end]
	if len(raw) == 0 {
		return "", consumed, nil
	}

	s, err := decodeCharset(raw, charset)
	if err != nil {
		return "", consumed, err
	}
	return s, consumed, nil
}

func decodeCharset(raw []byte, charset Charset) (string, error) {
	switch charset {
	case CharsetUTF8:
		return string(raw), nil
	default:
		dec := charmap.Windows1252.NewDecoder()
		return decodeBytes(dec, raw)
	}
}

func decodeBytes(dec *encoding.Decoder, raw []byte) (string, error) {
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadAsciiHex reads length ASCII characters at offset and interprets them
// as a base-16 number.
func (r *ByteReader) ReadAsciiHex(offset, length int) (uint32, error) {
	if err := r.bounds(offset, length); err != nil {
		return 0, err
	}

	s := string(r.buf[offset : offset+length])
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalidFormat("empty ascii-hex field")
	}

	var v uint32
	for _, c := range s {
		var digit uint32
		switch {
		case c >= '0' && c <= '9':
			digit = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = uint32(c-'A') + 10
		default:
			return 0, invalidFormat("non-hex ascii field")
		}
		v = v<<4 | digit
	}
	return v, nil
}

// ReadBytes returns a copy of length bytes at offset.
func (r *ByteReader) ReadBytes(offset, length int) ([]byte, error) {
	if err := r.bounds(offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, r.buf[offset:offset+length])
	return out, nil
}
