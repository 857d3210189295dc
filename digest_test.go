// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "testing"

func TestReadDigestOffsetOutOfBounds(t *testing.T) {
	d := readDigest(make([]byte, 10), 20)
	if d.Present {
		t.Error("expected Present false for an out-of-bounds digest offset")
	}
}

func TestReadDigestMalformedBytes(t *testing.T) {
	body := make([]byte, 32)
	copy(body[4:], []byte{0xDE, 0xAD, 0xBE, 0xEF})

	d := readDigest(body, 4)
	if d.Present {
		t.Error("expected Present false for bytes that don't parse as PKCS7")
	}
	if d.SignerCount != 0 {
		t.Errorf("SignerCount = %d, want 0", d.SignerCount)
	}
}
