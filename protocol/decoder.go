package protocol

import (
	"fmt"
	"io"
)

// decodeState is the position of the decoder inside a response frame.
type decodeState int

const (
	awaitingFrameStart decodeState = iota
	inBody
	awaitingChecksum
)

// Decode runs the response state machine against r, reading one byte at a
// time until a terminal state is reached. It never reads past the end of the
// response: trailing bytes stay in the stream.
//
// waitAnswer selects the entry mode. When false (bare handshake), an ACK byte
// terminates immediately with an ack-flagged Response and nothing further is
// consumed. When true, ACK bytes before the frame start are transit
// acknowledgements and are discarded. A NAK terminates immediately in either
// mode and in any state, pre-empting any partially collected fields.
//
// Decode returns the raw Response without judging it; NAK, checksum and
// device error classification happen in Validate. The returned error is
// non-nil only for transport read failures and protocol desync.
func Decode(r io.ByteReader, waitAnswer bool) (*Response, error) {
	state := awaitingFrameStart
	resp := &Response{}
	consumed := 0

	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read byte: %w", err)
		}
		consumed++
		if consumed > MaxFrameBytes {
			return nil, &DesyncError{Byte: b, Consumed: consumed}
		}

		if b == NAK {
			return newNakResponse(), nil
		}

		switch state {
		case awaitingFrameStart:
			switch b {
			case ACK:
				if !waitAnswer {
					return newAckResponse(), nil
				}
				// Transit acknowledgement; the data frame follows.
			case STX:
				state = inBody
			default:
				return nil, &DesyncError{Byte: b, Consumed: consumed}
			}

		case inBody:
			switch b {
			case SEP:
				// The separator right after STX opens field 0; every later
				// one closes the current field and opens the next.
				resp.fields = append(resp.fields, Field{})
			case ETX:
				state = awaitingChecksum
			default:
				if resp.fields == nil {
					resp.fields = append(resp.fields, Field{})
				}
				i := len(resp.fields) - 1
				resp.fields[i].data = append(resp.fields[i].data, b)
			}

		case awaitingChecksum:
			resp.checksum = b
			return resp, nil
		}
	}
}

// Validate applies the post-decode checks in protocol order: NAK first, then
// checksum (unless skipChecksum disables enforcement), then the device error
// code carried in the first field. A nil return means the response is a
// successful exchange the caller may consume.
func Validate(resp *Response, skipChecksum bool) error {
	if resp.IsNak() {
		return &NakError{Response: resp}
	}
	if !VerifyChecksum(resp, skipChecksum) {
		return &ChecksumError{
			Response: resp,
			Computed: ComputeLRC(resp.Body()),
			Received: resp.Checksum(),
		}
	}
	if code, ok := resp.errorCode(); ok {
		desc, _ := LookupErrorCode(code)
		return &DeviceError{Code: code, Description: desc, Response: resp}
	}
	return nil
}
