// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "testing"

func TestVisitBodyOrder(t *testing.T) {
	body := make([]byte, 40)
	ot := OffsetsTable{
		InitialValue: segmentEntry{Offset: 0, Size: 4},
		Action:       segmentEntry{Offset: 4, Size: 4},
		Ecode:        segmentEntry{Offset: 8, Size: 4},
		Debug:        segmentEntry{Offset: 12, Size: 4},
	}

	var order []string
	v := SegmentVisitor{
		InitialValue: func([]byte) error { order = append(order, "initial-value"); return nil },
		Action:       func([]byte) error { order = append(order, "action"); return nil },
		Ecode:        func([]byte) error { order = append(order, "ecode"); return nil },
		Debug:        func([]byte) error { order = append(order, "debug"); return nil },
	}

	if err := visitBody(body, ot, v); err != nil {
		t.Fatal(err)
	}

	want := []string{"initial-value", "action", "ecode", "debug"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestVisitBodyAbsentSegmentsSkipped(t *testing.T) {
	body := make([]byte, 10)
	ot := OffsetsTable{} // all absent

	called := false
	v := SegmentVisitor{
		InitialValue: func([]byte) error { called = true; return nil },
	}

	if err := visitBody(body, ot, v); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("visitor called for an absent segment")
	}
}

func TestVisitBodyOutOfBounds(t *testing.T) {
	body := make([]byte, 4)
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 100}}

	if err := visitBody(body, ot, SegmentVisitor{}); err == nil {
		t.Fatal("expected an error for an out-of-bounds segment")
	}
}

func TestVisitBodyNilVisitorIsNoop(t *testing.T) {
	body := make([]byte, 10)
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}

	if err := visitBody(body, ot, SegmentVisitor{}); err != nil {
		t.Fatal(err)
	}
}
