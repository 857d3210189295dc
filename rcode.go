// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// RCodeInfo is the decoded result of one r-code artifact: a header, a
// segment table, the fact that a signature block was consumed, and,
// for class artifacts, a *TypeInfo. It is the façade described in spec
// §4.7: it runs §4.2 -> §4.4 -> §4.3 -> §4.5 -> §4.6 in order and exposes
// read-only accessors. Once constructed it is immutable and may be shared
// across goroutines for read, per spec §5.
type RCodeInfo struct {
	header    HeaderInfo
	offsets   OffsetsTable
	sig       signatureBlock
	typeInfo  *TypeInfo
	digest    DigestInfo
	anomalies []string

	consumed int

	data mmap.MMap
	f    *os.File
}

// Open memory-maps the r-code file at path and decodes it, mirroring the
// teacher's pe.New(name, opts): the caller closes the returned RCodeInfo
// to unmap and close the underlying file.
func Open(path string, opts *Options) (*RCodeInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	info, err := decode(data, opts)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}
	info.data = data
	info.f = f
	return info, nil
}

// NewBytes decodes an in-memory r-code buffer, mirroring pe.NewBytes.
func NewBytes(data []byte, opts *Options) (*RCodeInfo, error) {
	return decode(data, opts)
}

// NewReader decodes r, which is consumed strictly forward and never
// seeked, per spec §4.7. The façade does not retain r past this call.
func NewReader(r io.Reader, opts *Options) (*RCodeInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data, opts)
}

// Close unmaps and closes the underlying file, if this RCodeInfo was
// constructed with Open. It is a no-op for NewBytes/NewReader results.
func (ri *RCodeInfo) Close() error {
	if ri.data != nil {
		_ = ri.data.Unmap()
	}
	if ri.f != nil {
		return ri.f.Close()
	}
	return nil
}

// GetTypeInfo returns the decoded TypeInfo, or nil for a procedure
// artifact (no type block).
func (ri *RCodeInfo) GetTypeInfo() *TypeInfo { return ri.typeInfo }

// GetVersion returns the raw version word from the header.
func (ri *RCodeInfo) GetVersion() uint16 { return ri.header.Version }

// GetVersionMajor returns the low 14 bits of the version word.
func (ri *RCodeInfo) GetVersionMajor() uint16 { return ri.header.VersionMajor }

// GetTimeStamp returns the raw header timestamp, in seconds; callers
// convert to wall-clock time as they see fit.
func (ri *RCodeInfo) GetTimeStamp() int64 { return ri.header.Timestamp }

// Is64Bit reports whether bit 14 of the version word was set.
func (ri *RCodeInfo) Is64Bit() bool { return ri.header.Is64Bit }

// IsClass reports whether a non-empty type block was decoded.
func (ri *RCodeInfo) IsClass() bool { return ri.typeInfo != nil }

// Digest returns the best-effort, non-validating read of the compiler's
// signature block (see digest.go). Present is false when the bytes at the
// header's digest offset didn't parse as PKCS7, which is not an error.
func (ri *RCodeInfo) Digest() DigestInfo { return ri.digest }

// Anomalies returns non-fatal structural oddities noticed during decode
// (spec §4.6 "tolerate unknown flag bits: store but do not interpret" and
// similar situations the teacher would record rather than fault on).
func (ri *RCodeInfo) Anomalies() []string { return ri.anomalies }

// Consumed returns the number of bytes decode read from the stream; for a
// well-formed input this equals headerSize + v12TailIfAny + signatureSize
// + segmentTableSize + rcodeSize + typeBlockSize, per spec §8.
func (ri *RCodeInfo) Consumed() int { return ri.consumed }

// decode runs the full pipeline of spec §4.7 over data: header -> v12 tail
// -> signature -> segment table -> body -> optional type block.
func decode(data []byte, opts *Options) (*RCodeInfo, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.fillDefaults()

	hdr, consumed, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	opts.Sink.Header(hdr)

	if err := checkOversize(opts, "signature", uint64(hdr.SignatureSize)); err != nil {
		return nil, err
	}
	if err := checkOversize(opts, "segment-table", uint64(hdr.SegmentTableSize)); err != nil {
		return nil, err
	}
	if err := checkOversize(opts, "body", uint64(hdr.RCodeSize)); err != nil {
		return nil, err
	}
	if err := checkOversize(opts, "type-block", uint64(hdr.TypeBlockSize)); err != nil {
		return nil, err
	}

	cursor := consumed

	if len(data) < cursor+int(hdr.SignatureSize) {
		return nil, shortRead("signature")
	}
	sig, err := decodeSignatureBlock(data[cursor:], hdr.Order, hdr.SignatureSize, opts.Charset)
	if err != nil {
		return nil, err
	}
	opts.Sink.Signature(sig)
	cursor += int(hdr.SignatureSize)

	if len(data) < cursor+int(hdr.SegmentTableSize) {
		return nil, shortRead("segment-table")
	}
	ot, err := decodeSegmentTable(data[cursor:], hdr.Order, hdr.SegmentTableSize)
	if err != nil {
		return nil, err
	}
	opts.Sink.Segments(ot)
	cursor += int(hdr.SegmentTableSize)

	if len(data) < cursor+int(hdr.RCodeSize) {
		return nil, shortRead("body")
	}
	body := data[cursor : cursor+int(hdr.RCodeSize)]
	cursor += int(hdr.RCodeSize)

	if err := visitBodyWithSink(body, ot, opts); err != nil {
		return nil, err
	}

	digest := readDigest(body, hdr.DigestOffset)

	var typeInfo *TypeInfo
	if hdr.TypeBlockSize > 0 {
		if len(data) < cursor+int(hdr.TypeBlockSize) {
			return nil, shortRead("type-block")
		}
		block := data[cursor : cursor+int(hdr.TypeBlockSize)]
		typeInfo, err = decodeTypeBlock(block, hdr, opts.Charset)
		if err != nil {
			return nil, err
		}
		cursor += int(hdr.TypeBlockSize)
	}
	opts.Sink.TypeBlock(typeInfo)

	anomalies := collectAnomalies(hdr, ot, sig, body, typeInfo)
	for _, a := range anomalies {
		opts.Logger.Warnf("rcode: anomaly: %s", a)
	}

	return &RCodeInfo{
		header:    hdr,
		offsets:   ot,
		sig:       sig,
		typeInfo:  typeInfo,
		digest:    digest,
		anomalies: anomalies,
		consumed:  cursor,
	}, nil
}

func checkOversize(opts *Options, section string, size uint64) error {
	if size > uint64(opts.MaxSegmentSize) {
		return invalidFormat("oversize " + section)
	}
	return nil
}

func visitBodyWithSink(body []byte, ot OffsetsTable, opts *Options) error {
	wrap := func(label string, fn func([]byte) error) func([]byte) error {
		return func(b []byte) error {
			opts.Sink.Body(label, b)
			if fn == nil {
				return nil
			}
			return fn(b)
		}
	}

	v := SegmentVisitor{
		InitialValue: wrap("initial-value", opts.Visitor.InitialValue),
		Action:       wrap("action", opts.Visitor.Action),
		Ecode:        wrap("ecode", opts.Visitor.Ecode),
		Debug:        wrap("debug", opts.Visitor.Debug),
	}
	return visitBody(body, ot, v)
}
