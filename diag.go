// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// DiagSink receives a printable record for each component decode walks, in
// the same header -> signature -> segments -> body -> type-block order the
// decoder reads them in, per spec §5 ("the diagnostic sink receives events
// in the same order"). It is a strict debug aid; format is unspecified
// beyond "printable".
type DiagSink interface {
	Header(HeaderInfo)
	Segments(OffsetsTable)
	Signature(signatureBlock)
	Body(label string, data []byte)
	TypeBlock(*TypeInfo)
}

// noopSink is the default DiagSink: it discards every event.
type noopSink struct{}

func (noopSink) Header(HeaderInfo)        {}
func (noopSink) Segments(OffsetsTable)    {}
func (noopSink) Signature(signatureBlock) {}
func (noopSink) Body(string, []byte)      {}
func (noopSink) TypeBlock(*TypeInfo)      {}

// HexDumpSink writes a hex.Dump of each binary event and a fmt-formatted
// line for each structured one, grounded on cmd/dump.go's use of
// encoding/hex for its own textual dumps.
type HexDumpSink struct {
	w       io.Writer
	encoder *zstd.Encoder
}

// HexDumpSinkOption configures a HexDumpSink.
type HexDumpSinkOption func(*HexDumpSink)

// Compressed wraps the sink's writer in a zstd encoder, for callers
// archiving dumps from large batch runs (see the -z flag of cmd/rcodedump's
// dump command).
func Compressed(enabled bool) HexDumpSinkOption {
	return func(s *HexDumpSink) {
		if !enabled {
			return
		}
		enc, err := zstd.NewWriter(s.w)
		if err == nil {
			s.encoder = enc
			s.w = enc
		}
	}
}

// NewHexDumpSink returns a HexDumpSink writing to w.
func NewHexDumpSink(w io.Writer, opts ...HexDumpSinkOption) *HexDumpSink {
	s := &HexDumpSink{w: w}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close flushes and closes the underlying compressor, if Compressed(true)
// was used. It is a no-op otherwise.
func (s *HexDumpSink) Close() error {
	if s.encoder != nil {
		return s.encoder.Close()
	}
	return nil
}

func (s *HexDumpSink) Header(h HeaderInfo) {
	fmt.Fprintf(s.w, "header: version=%#x major=%d is64=%v timestamp=%d\n",
		h.Version, h.VersionMajor, h.Is64Bit, h.Timestamp)
}

func (s *HexDumpSink) Segments(o OffsetsTable) {
	fmt.Fprintf(s.w, "segments: initial=%+v action=%+v ecode=%+v debug=%+v\n",
		o.InitialValue, o.Action, o.Ecode, o.Debug)
}

func (s *HexDumpSink) Signature(sig signatureBlock) {
	fmt.Fprintf(s.w, "signature: preamble=%d elements=%d skipped=%d consumed=%d\n",
		sig.PreambleSize, sig.NumElements, sig.Skipped, sig.Consumed)
}

func (s *HexDumpSink) Body(label string, data []byte) {
	fmt.Fprintf(s.w, "body[%s]:\n%s", label, hex.Dump(data))
}

func (s *HexDumpSink) TypeBlock(ti *TypeInfo) {
	if ti == nil {
		fmt.Fprintln(s.w, "type-block: none (procedure)")
		return
	}
	fmt.Fprintf(s.w, "type-block: name=%s parent=%s methods=%d properties=%d variables=%d events=%d tables=%d\n",
		ti.Name(), ti.ParentName(), len(ti.methods), len(ti.properties),
		len(ti.variables), len(ti.events), len(ti.tables))
}
