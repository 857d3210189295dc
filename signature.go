// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "encoding/binary"

// signaturePreambleFieldWidth is the width, in ASCII characters, of each
// hex-encoded field in the signature block preamble.
const signaturePreambleFieldWidth = 4

// datasetRecordPrefix and tempTableRecordPrefix mark signature records
// this core does not model; they are skipped rather than decoded, per
// spec §4.4.
const (
	datasetRecordPrefix  = "DSET"
	tempTableRecordPrefix = "TTAB"
)

// signatureBlock is the result of walking the signature block: the decoder
// retains only the fact of consumption, per spec §4.4 ("parsing internals
// are best-effort").
type signatureBlock struct {
	PreambleSize uint32
	NumElements  uint32
	Skipped      int // number of DSET/TTAB records skipped
	Consumed     int // number of other records consumed opaquely
}

// decodeSignatureBlock reads exactly size bytes of buf, per spec §4.4.
func decodeSignatureBlock(buf []byte, order binary.ByteOrder, size uint32, charset Charset) (signatureBlock, error) {
	var sig signatureBlock

	if uint32(len(buf)) < size {
		return sig, shortRead("signature")
	}
	region := buf[:size]
	r := NewByteReader(region, order)

	preambleSize, err := r.ReadAsciiHex(0, signaturePreambleFieldWidth)
	if err == ErrOutsideBoundary {
		return sig, shortRead("signature")
	}
	if err != nil {
		return sig, err
	}
	numElements, err := r.ReadAsciiHex(signaturePreambleFieldWidth, signaturePreambleFieldWidth)
	if err == ErrOutsideBoundary {
		return sig, shortRead("signature")
	}
	if err != nil {
		return sig, err
	}
	sig.PreambleSize = preambleSize
	sig.NumElements = numElements

	offset := int(preambleSize)
	for i := uint32(0); i < numElements; i++ {
		if offset < 0 || offset > len(region) {
			return sig, shortRead("signature")
		}

		// Peek the record's four-byte prefix, if there's room for one,
		// to decide whether it is a DSET/TTAB descriptor we skip.
		prefix := ""
		if offset+4 <= len(region) {
			prefix = string(region[offset : offset+4])
		}

		_, consumed, err := r.ReadCString(offset, charset)
		if err != nil {
			return sig, shortRead("signature")
		}
		if consumed == 0 {
			// A zero-length record with no terminator found would spin
			// forever; treat it as truncation.
			return sig, shortRead("signature")
		}
		offset += consumed

		if prefix == datasetRecordPrefix || prefix == tempTableRecordPrefix {
			sig.Skipped++
		} else {
			sig.Consumed++
		}
	}

	return sig, nil
}
