// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers use errors.Is against these three values;
// the wrapping error carries the section/reason/version that triggered it.
var (
	// ErrShortRead is returned when the stream ends before a section
	// finishes decoding.
	ErrShortRead = errors.New("r-code: stream ended before section was fully read")

	// ErrInvalidFormat is returned on magic mismatch, non-hex ASCII where
	// hex was required, an out-of-bounds string-pool offset, a zero body
	// size, or a segment larger than the configured maximum.
	ErrInvalidFormat = errors.New("r-code: stream is not well-formed")

	// ErrUnsupportedVersion is returned when version_major predates 1100.
	ErrUnsupportedVersion = errors.New("r-code: version predates the supported format")

	// ErrOutsideBoundary is returned by ByteReader when a read would run
	// past the end of the buffer it was handed.
	ErrOutsideBoundary = errors.New("r-code: reading data outside boundary")
)

// shortRead wraps ErrShortRead with the section that was being decoded.
func shortRead(section string) error {
	return fmt.Errorf("%w: %s", ErrShortRead, section)
}

// invalidFormat wraps ErrInvalidFormat with the reason it was raised.
func invalidFormat(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, reason)
}

// unsupportedVersion wraps ErrUnsupportedVersion with the offending version.
func unsupportedVersion(v uint16) error {
	return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
}
