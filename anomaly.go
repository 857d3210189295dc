// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// Anomalies found while decoding an r-code artifact. These never abort a
// decode (spec §5: a conforming implementation tolerates and records an
// out-of-range field it doesn't strictly need rather than failing on it);
// they are informational, mirroring the teacher's GetAnomalies/AnoXxx
// pattern in style.
var (
	// AnoTimestampNull is reported when the header timestamp is 0.
	AnoTimestampNull = "header timestamp is 0"

	// AnoDigestOffsetOutOfBody is reported when the header's digest offset
	// points outside the decoded r-code body.
	AnoDigestOffsetOutOfBody = "digest offset is outside the r-code body"

	// AnoNoSegmentsPresent is reported when none of the four body segments
	// (initial-value, action, ecode, debug) are present.
	AnoNoSegmentsPresent = "no body segments are present"

	// AnoUnknownFlagBits is reported when a type block's AccessFlags has
	// bits set outside the flags this module interprets (spec §4.6:
	// "tolerate unknown flag bits: store but do not interpret").
	AnoUnknownFlagBits = "type-info flags contain unrecognized bits"

	// AnoSignatureAllSkipped is reported when a non-empty signature block
	// decoded with every record skipped as a DSET/TTAB entry.
	AnoSignatureAllSkipped = "signature block contained no non-dataset records"
)

// knownFlagBits is the union of every AccessFlags bit this module assigns
// meaning to; anything outside it is an unknown bit per spec §4.6.
const knownFlagBits = FlagPublic | FlagProtected | FlagPrivate | FlagStatic |
	FlagAbstract | FlagOverride | FlagFinal | FlagSerializable

// collectAnomalies inspects a fully decoded artifact and returns the
// anomaly messages that apply, in the order the corresponding component
// was decoded.
func collectAnomalies(hdr HeaderInfo, ot OffsetsTable, sig signatureBlock, body []byte, ti *TypeInfo) []string {
	var anomalies []string

	if hdr.Timestamp == 0 {
		anomalies = addAnomaly(anomalies, AnoTimestampNull)
	}
	if hdr.DigestOffset != 0 && int(hdr.DigestOffset) >= len(body) {
		anomalies = addAnomaly(anomalies, AnoDigestOffsetOutOfBody)
	}
	if !ot.InitialValue.Present() && !ot.Action.Present() && !ot.Ecode.Present() && !ot.debugPresent() {
		anomalies = addAnomaly(anomalies, AnoNoSegmentsPresent)
	}
	if sig.NumElements > 0 && sig.Consumed == 0 {
		anomalies = addAnomaly(anomalies, AnoSignatureAllSkipped)
	}
	if ti != nil && ti.flags&^knownFlagBits != 0 {
		anomalies = addAnomaly(anomalies, AnoUnknownFlagBits)
	}

	return anomalies
}

// addAnomaly appends anomaly to anomalies if it isn't already present.
func addAnomaly(anomalies []string, anomaly string) []string {
	for _, a := range anomalies {
		if a == anomaly {
			return anomalies
		}
	}
	return append(anomalies, anomaly)
}
