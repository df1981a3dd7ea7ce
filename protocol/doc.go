// Package protocol implements the wire protocol spoken by stream-attached
// hardware encoders.
//
// # Protocol Overview
//
// The protocol is a fixed-format, byte-oriented request/response exchange over
// a blocking stream transport (serial line or socket). Three standalone
// control bytes exist outside any frame:
//
//	ENQ (0x05)  handshake: "are you ready?"
//	ACK (0x06)  positive acknowledgement
//	NAK (0x15)  negative acknowledgement (request rejected)
//
// Data frames carry an ordered list of fields, each preceded by a separator:
//
//	[STX][SEP][field0][SEP][field1]...[SEP][fieldN][ETX][LRC]
//
// Where:
//   - STX = 0x02, ETX = 0x03 delimit the frame body
//   - SEP = 0xB3 precedes every field
//   - LRC = single-byte XOR checksum over the body (STX/ETX excluded,
//     separators included)
//
// The special value 0x0D in place of the LRC requests that checksum
// verification be skipped for the exchange.
//
// # Building Requests
//
// Commands implement the Command interface and produce an ordered Element
// sequence; EncodeFrame flattens it into the bytes to write:
//
//	cmd := &protocol.Generic{Code: "RD", Fields: []string{"0001"}}
//	frame := protocol.EncodeFrame(cmd.Elements())
//
// # Decoding Responses
//
// Decode consumes the transport one byte at a time until the response is
// terminal, then Validate classifies it:
//
//	resp, err := protocol.Decode(transport, true)
//	if err != nil {
//	    return err // read failure or protocol desync
//	}
//	if err := protocol.Validate(resp, false); err != nil {
//	    return err // *NakError, *ChecksumError or *DeviceError
//	}
//
// Validation order is fixed: NAK first, then checksum, then the device error
// code carried in the first field. All classified errors retain the raw
// Response for diagnostics. The package never retries; retry and timeout
// policy belong to the caller and the transport.
package protocol
