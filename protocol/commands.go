package protocol

import "time"

// Command produces the ordered frame elements for one request to the encoder.
// The engine treats commands opaquely: it encodes the elements, writes them,
// and decodes whatever comes back.
type Command interface {
	// Elements returns the complete element sequence, framing bytes and
	// checksum included.
	Elements() []Element

	// Label names the command for logs and error messages.
	Label() string

	// Handshake reports whether the command is a bare ENQ enquiry, which the
	// encoder answers with a single ACK instead of a data frame.
	Handshake() bool
}

// Enquiry is the bare ENQ handshake asking the encoder to confirm readiness.
type Enquiry struct{}

func (Enquiry) Elements() []Element { return []Element{Raw(ENQ)} }
func (Enquiry) Label() string       { return "enquiry" }
func (Enquiry) Handshake() bool     { return true }

// Generic is a data command with a two-character code and ordered text
// fields, framed as STX, separator-joined fields, ETX and the LRC over the
// body.
type Generic struct {
	// Code is the command code, transmitted as field 0.
	Code string

	// Fields are the remaining text fields, in transmission order.
	Fields []string

	// SkipLRC transmits LRCSkip in place of the computed checksum, asking the
	// encoder not to verify this frame.
	SkipLRC bool
}

func (c *Generic) Elements() []Element {
	inner := []Element{Raw(SEP), Text(c.Code)}
	for _, f := range c.Fields {
		inner = append(inner, Raw(SEP), Text(f))
	}

	lrc := Raw(LRCSkip)
	if !c.SkipLRC {
		lrc = Raw(ComputeLRC(EncodeFrame(inner)))
	}

	elements := make([]Element, 0, len(inner)+3)
	elements = append(elements, Raw(STX))
	elements = append(elements, inner...)
	return append(elements, Raw(ETX), lrc)
}

func (c *Generic) Label() string {
	if c.Code == "" {
		return "command"
	}
	return "command " + c.Code
}

func (c *Generic) Handshake() bool { return false }

// clockCode is the command code for setting the encoder's internal clock.
const clockCode = "DT"

// SetClock sets the encoder's internal clock. The timestamp travels as a
// single text field in ClockLayout (hhmmDDMMYY).
type SetClock struct {
	At time.Time
}

func (c SetClock) Elements() []Element {
	g := Generic{Code: clockCode, Fields: []string{c.At.Format(ClockLayout)}}
	return g.Elements()
}

func (c SetClock) Label() string   { return "set clock" }
func (c SetClock) Handshake() bool { return false }
