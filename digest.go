// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "go.mozilla.org/pkcs7"

// DigestInfo is a best-effort, non-validating structural read of the
// compiler's signature block. Per spec §1 Non-goals ("validating the
// compiler's signature block beyond locating it"), this module never
// checks the signature: it only reports, through RCodeInfo.Digest, whether
// the body bytes at HeaderInfo.DigestOffset parse as a PKCS7 SignedData
// envelope and how many signers it names — mirroring how the teacher's
// ParseRichHeader logs and continues past a block that failed to parse
// instead of aborting the whole decode (file.go's Parse).
type DigestInfo struct {
	Present    bool
	SignerCount int
}

// readDigest attempts to parse body[offset:] as PKCS7 SignedData. A parse
// failure is not an error: it just means the digest isn't laid out that
// way (or isn't present at all), which this module was never going to
// validate anyway.
func readDigest(body []byte, offset uint16) DigestInfo {
	if int(offset) >= len(body) {
		return DigestInfo{}
	}

	p7, err := pkcs7.Parse(body[offset:])
	if err != nil {
		return DigestInfo{}
	}

	return DigestInfo{
		Present:     true,
		SignerCount: len(p7.Signers),
	}
}
