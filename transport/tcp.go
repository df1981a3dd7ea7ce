package transport

import (
	"bufio"
	"fmt"
	"net"
)

// TCP is an encoder link over a stream socket, for encoders attached through
// a serial-to-ethernet converter or a network interface of their own.
type TCP struct {
	addr   string
	conn   net.Conn
	reader *bufio.Reader
}

// NewTCP configures a TCP transport for the given host:port address.
func NewTCP(addr string) *TCP {
	return &TCP{addr: addr}
}

func (t *TCP) Open() error {
	conn, err := net.Dial("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.addr, err)
	}
	t.conn = conn
	t.reader = bufio.NewReader(conn)
	return nil
}

// ReadByte blocks until one byte arrives on the socket.
func (t *TCP) ReadByte() (byte, error) {
	if t.reader == nil {
		return 0, ErrNotOpen
	}
	return t.reader.ReadByte()
}

func (t *TCP) Write(p []byte) (int, error) {
	if t.conn == nil {
		return 0, ErrNotOpen
	}
	return t.conn.Write(p)
}

func (t *TCP) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.reader = nil
	return err
}
