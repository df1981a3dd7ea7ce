// Package transport provides concrete byte-stream links to an encoder:
// a serial port (go.bug.st/serial) and a TCP socket. Both satisfy the
// client.Transport contract.
package transport

import "errors"

// ErrNotOpen is returned when reading or writing a transport before Open
// succeeded (or after Close).
var ErrNotOpen = errors.New("transport not open")
