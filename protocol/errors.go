package protocol

import "fmt"

// NakError reports that the encoder rejected the request outright with a NAK
// control byte. The engine never retries; whether to resend is the caller's
// decision.
type NakError struct {
	// Response is the raw nak-flagged response, kept for diagnostics.
	Response *Response
}

func (e *NakError) Error() string {
	return "encoder rejected request (NAK)"
}

// ChecksumError reports a frame corrupted in transit: the LRC recomputed over
// the response body does not match the received checksum byte. Raised only
// when checksum enforcement is active.
type ChecksumError struct {
	Response *Response
	Computed byte
	Received byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("response checksum mismatch: computed 0x%02X, received 0x%02X",
		e.Computed, e.Received)
}

// DeviceError reports that the encoder processed the request but answered
// with a semantic failure code in the first field.
type DeviceError struct {
	// Code is the two-character error code from the response.
	Code string

	// Description is the human-readable text for Code.
	Description string

	Response *Response
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("encoder error %s: %s", e.Code, e.Description)
}

// DesyncError reports a byte that matches no decoder transition, or a frame
// that exceeded MaxFrameBytes. The stream is out of step with the protocol
// and the connection should be considered unusable.
type DesyncError struct {
	// Byte is the offending byte as read from the stream.
	Byte byte

	// Consumed is the number of bytes this decode had read, Byte included.
	Consumed int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("protocol desync: unexpected byte 0x%02X after %d bytes", e.Byte, e.Consumed)
}
