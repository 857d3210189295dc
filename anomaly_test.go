// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"encoding/binary"
	"testing"
)

func TestCollectAnomaliesTimestampNull(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 0}
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}
	got := collectAnomalies(hdr, ot, signatureBlock{}, nil, nil)

	if !stringInSlice(AnoTimestampNull, got) {
		t.Errorf("expected %q in %v", AnoTimestampNull, got)
	}
}

func TestCollectAnomaliesNoSegments(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 123}
	got := collectAnomalies(hdr, OffsetsTable{}, signatureBlock{}, nil, nil)

	if !stringInSlice(AnoNoSegmentsPresent, got) {
		t.Errorf("expected %q in %v", AnoNoSegmentsPresent, got)
	}
}

func TestCollectAnomaliesDigestOutOfBody(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 1, DigestOffset: 100}
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}
	got := collectAnomalies(hdr, ot, signatureBlock{}, make([]byte, 10), nil)

	if !stringInSlice(AnoDigestOffsetOutOfBody, got) {
		t.Errorf("expected %q in %v", AnoDigestOffsetOutOfBody, got)
	}
}

func TestCollectAnomaliesSignatureAllSkipped(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 1}
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}
	sig := signatureBlock{NumElements: 2, Skipped: 2, Consumed: 0}
	got := collectAnomalies(hdr, ot, sig, nil, nil)

	if !stringInSlice(AnoSignatureAllSkipped, got) {
		t.Errorf("expected %q in %v", AnoSignatureAllSkipped, got)
	}
}

func TestCollectAnomaliesUnknownFlagBits(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 1}
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}
	ti := &TypeInfo{flags: knownFlagBits | (1 << 30)}
	got := collectAnomalies(hdr, ot, signatureBlock{}, nil, ti)

	if !stringInSlice(AnoUnknownFlagBits, got) {
		t.Errorf("expected %q in %v", AnoUnknownFlagBits, got)
	}
}

func TestCollectAnomaliesClean(t *testing.T) {
	hdr := HeaderInfo{Order: binary.BigEndian, Timestamp: 1}
	ot := OffsetsTable{Action: segmentEntry{Offset: 0, Size: 4}}
	ti := &TypeInfo{flags: FlagPublic}
	got := collectAnomalies(hdr, ot, signatureBlock{}, nil, ti)

	if len(got) != 0 {
		t.Errorf("expected no anomalies, got: %v", got)
	}
}

func stringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}
