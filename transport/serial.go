package transport

import (
	"bufio"
	"fmt"

	"go.bug.st/serial"
)

// DefaultBaudRate is the factory line speed of the encoder.
const DefaultBaudRate = 9600

// Serial is an encoder link over a local serial port. Reads are buffered;
// bytes past the end of a response stay in the buffer for the next exchange.
type Serial struct {
	device string
	mode   *serial.Mode
	port   serial.Port
	reader *bufio.Reader
}

// NewSerial configures a serial transport for the given device path. The
// encoder speaks 8N1; baud <= 0 selects DefaultBaudRate.
func NewSerial(device string, baud int) *Serial {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	return &Serial{
		device: device,
		mode: &serial.Mode{
			BaudRate: baud,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
	}
}

// Open opens the serial port with the configured mode.
func (s *Serial) Open() error {
	port, err := serial.Open(s.device, s.mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.device, err)
	}
	s.port = port
	s.reader = bufio.NewReader(port)
	return nil
}

// ReadByte blocks until one byte is available on the line.
func (s *Serial) ReadByte() (byte, error) {
	if s.reader == nil {
		return 0, ErrNotOpen
	}
	return s.reader.ReadByte()
}

func (s *Serial) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotOpen
	}
	return s.port.Write(p)
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	s.reader = nil
	return err
}
