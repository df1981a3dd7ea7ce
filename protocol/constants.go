package protocol

// Control bytes of the encoder link protocol.
const (
	// ENQ is the standalone handshake byte asking the encoder to confirm
	// readiness. It travels outside any frame.
	ENQ byte = 0x05

	// ACK is the positive single-byte acknowledgement.
	ACK byte = 0x06

	// NAK is the negative single-byte acknowledgement. The encoder sends it
	// when a request is rejected outright.
	NAK byte = 0x15

	// STX marks the start of a frame body.
	STX byte = 0x02

	// ETX marks the end of a frame body. The byte after ETX is the checksum.
	ETX byte = 0x03

	// SEP delimits fields inside a frame body. A separator precedes every
	// field, including field 0.
	SEP byte = 0xB3

	// LRCSkip may be transmitted in place of a real LRC byte to request that
	// checksum verification be skipped for the exchange.
	LRCSkip byte = 0x0D
)

// ClockLayout is the fixed textual layout of date-valued fields (hhmmDDMMYY),
// expressed as a Go time layout.
const ClockLayout = "1504020106"

// MaxFrameBytes bounds the number of bytes a single decode may consume. A
// well-formed response never comes close; hitting the bound means the stream
// is out of sync with the protocol.
const MaxFrameBytes = 4096
