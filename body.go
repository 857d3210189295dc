// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// SegmentVisitor is an explicit capability set of optional callbacks, one
// per body segment kind. It replaces the subclass-as-extension-point
// pattern the teacher used for its own per-directory processors (see
// file.go's ParseDataDirectories funcMaps dispatch table) with a plain
// value: the zero SegmentVisitor is all-no-op, matching spec §4.5 ("the
// four processors are no-ops returning success; they exist as extension
// points").
type SegmentVisitor struct {
	InitialValue func([]byte) error
	Action       func([]byte) error
	Ecode        func([]byte) error
	Debug        func([]byte) error
}

// visitBody slices body by the offsets in ot and hands each present
// segment to its visitor callback, in InitialValue/Action/Ecode/Debug
// order (the diagnostic sink ordering guarantee of spec §5 depends on this
// sequence).
func visitBody(body []byte, ot OffsetsTable, v SegmentVisitor) error {
	if ot.InitialValue.Present() {
		if err := callVisitor(body, ot.InitialValue, v.InitialValue); err != nil {
			return err
		}
	}
	if ot.Action.Present() {
		if err := callVisitor(body, ot.Action, v.Action); err != nil {
			return err
		}
	}
	if ot.Ecode.Present() {
		if err := callVisitor(body, ot.Ecode, v.Ecode); err != nil {
			return err
		}
	}
	if ot.debugPresent() {
		if err := callVisitor(body, ot.Debug, v.Debug); err != nil {
			return err
		}
	}
	return nil
}

func callVisitor(body []byte, seg segmentEntry, fn func([]byte) error) error {
	start := int(seg.Offset)
	end := start + int(seg.Size)
	if start < 0 || end > len(body) || end < start {
		return shortRead("body")
	}
	if fn == nil {
		return nil
	}
	return fn(body[start:end])
}
