// Package client drives request/response exchanges with a stream-attached
// hardware encoder: it encodes a command's frame, writes it to the transport,
// decodes the reply byte by byte and classifies the outcome.
package client

import (
	"fmt"

	"github.com/smarchetti/go-enclink/protocol"
)

// Client is the request orchestrator. It is strictly synchronous: one request
// in flight at a time, and Do blocks until the peer completes (or fails) the
// response. Retry, timeout and reconnect policy belong to the caller and the
// transport.
//
// Client is not safe for concurrent use.
type Client struct {
	transport Transport
	config    Config
}

// New creates a Client over the given transport.
//
// Example:
//
//	link := transport.NewSerial("/dev/ttyUSB0", 9600)
//	cli := client.New(link, client.WithSkipChecksum(false))
func New(t Transport, opts ...Option) *Client {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		transport: t,
		config:    cfg,
	}
}

// Open establishes the transport link. Must be called before Do.
func (c *Client) Open() error {
	return c.transport.Open()
}

// Close releases the transport link.
func (c *Client) Close() error {
	return c.transport.Close()
}

// SetSkipChecksum toggles checksum enforcement. Only call between requests;
// the flag is read-only while a decode is in progress.
func (c *Client) SetSkipChecksum(skip bool) {
	c.config.SkipChecksum = skip
}

// Do sends cmd and returns the validated response. Handshake enquiries are
// decoded in fast-ack mode: the first ACK terminates the exchange. For data
// commands an early ACK is a transit acknowledgement and the decoder keeps
// waiting for the frame.
//
// On failure the returned error wraps one of *protocol.NakError,
// *protocol.ChecksumError, *protocol.DeviceError or *protocol.DesyncError;
// use errors.As to classify. The command is bound to the response before
// validation, so classified errors carry it too.
func (c *Client) Do(cmd protocol.Command) (*protocol.Response, error) {
	frame := protocol.EncodeFrame(cmd.Elements())

	c.config.Logger.Debug().
		Str("command", cmd.Label()).
		Hex("frame", frame).
		Msg("sending frame")

	if _, err := c.transport.Write(frame); err != nil {
		return nil, fmt.Errorf("%s: write frame: %w", cmd.Label(), err)
	}

	resp, err := protocol.Decode(c.transport, !cmd.Handshake())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Label(), err)
	}
	resp.BindRequest(cmd)

	if err := protocol.Validate(resp, c.config.SkipChecksum); err != nil {
		c.config.Logger.Debug().
			Str("command", cmd.Label()).
			Err(err).
			Msg("response rejected")
		return nil, fmt.Errorf("%s: %w", cmd.Label(), err)
	}

	c.config.Logger.Debug().
		Str("command", cmd.Label()).
		Bool("ack", resp.IsAck()).
		Int("fields", len(resp.Fields())).
		Msg("response accepted")

	return resp, nil
}

// Handshake sends a bare ENQ enquiry and succeeds when the encoder answers
// with ACK.
func (c *Client) Handshake() error {
	_, err := c.Do(protocol.Enquiry{})
	return err
}
