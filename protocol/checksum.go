package protocol

// ComputeLRC returns the longitudinal redundancy check over body: the XOR of
// every byte in the protected region of a frame, which runs from the byte
// after STX to the byte before ETX, separators included as transmitted.
func ComputeLRC(body []byte) byte {
	var lrc byte
	for _, b := range body {
		lrc ^= b
	}
	return lrc
}

// VerifyChecksum reports whether the response's received checksum byte matches
// the LRC recomputed over its reconstructed body.
//
// Two conditions bypass verification and always pass: skip (the client-level
// skip-checksum mode) and a received LRCSkip byte, which is the peer's
// wire-level request to skip checking for this exchange.
func VerifyChecksum(resp *Response, skip bool) bool {
	if skip || resp.Checksum() == LRCSkip {
		return true
	}
	return ComputeLRC(resp.Body()) == resp.Checksum()
}
