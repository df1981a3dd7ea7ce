package client

// Transport is the minimal byte-stream contract the engine needs from its
// link to the encoder. Implementations live in the transport package; any
// type with these methods works, including in-memory fakes for tests.
//
// ReadByte must block until a byte is available or the link fails. The engine
// defines no timeout of its own; if the peer sends fewer bytes than the
// protocol requires, a decode blocks until the transport gives up.
type Transport interface {
	Open() error
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
	Close() error
}
