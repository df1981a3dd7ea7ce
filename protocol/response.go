package protocol

// Field is one delimited segment of a frame body: the ordered bytes collected
// between two separators, or between the last separator and ETX.
type Field struct {
	data []byte
}

// Bytes returns the raw field bytes. Callers must not modify the slice.
func (f Field) Bytes() []byte { return f.data }

// Text returns the field bytes decoded as ASCII text.
func (f Field) Text() string { return string(f.data) }

// Response is one decoded reply from the encoder: either a bare control
// acknowledgement (ack or nak, never both, never with fields) or a data frame
// with an ordered field list and its checksum byte.
//
// Checksum validity is a property checked after construction, via
// VerifyChecksum or Validate; a Response with a bad checksum is still a valid
// value that the caller must explicitly reject.
type Response struct {
	fields   []Field
	checksum byte
	ack      bool
	nak      bool
	request  Command
}

func newAckResponse() *Response { return &Response{ack: true} }
func newNakResponse() *Response { return &Response{nak: true} }

// Fields returns the ordered field list. Index order is significant.
func (r *Response) Fields() []Field { return r.fields }

// Field returns the field at index i, if present.
func (r *Response) Field(i int) (Field, bool) {
	if i < 0 || i >= len(r.fields) {
		return Field{}, false
	}
	return r.fields[i], true
}

// Checksum returns the checksum byte as received on the wire.
func (r *Response) Checksum() byte { return r.checksum }

// IsAck reports whether the response is a bare positive acknowledgement.
func (r *Response) IsAck() bool { return r.ack }

// IsNak reports whether the response is a bare negative acknowledgement.
func (r *Response) IsNak() bool { return r.nak }

// IsError reports whether the leading two bytes of the first field name a
// known device error code.
func (r *Response) IsError() bool {
	_, ok := r.errorCode()
	return ok
}

// ErrorDescription returns the taxonomy description of the device error
// carried by this response, or "" if the response is not an error.
func (r *Response) ErrorDescription() string {
	code, ok := r.errorCode()
	if !ok {
		return ""
	}
	desc, _ := LookupErrorCode(code)
	return desc
}

func (r *Response) errorCode() (string, bool) {
	if len(r.fields) == 0 || len(r.fields[0].data) < 2 {
		return "", false
	}
	code := string(r.fields[0].data[:2])
	if _, ok := LookupErrorCode(code); !ok {
		return "", false
	}
	return code, true
}

// BindRequest records the command that produced this response. The
// association is diagnostic only, non-owning, and settable once: later calls
// keep the first binding.
func (r *Response) BindRequest(cmd Command) {
	if r.request == nil {
		r.request = cmd
	}
}

// Request returns the command bound via BindRequest, or nil.
func (r *Response) Request() Command { return r.request }

// Body reconstructs the protected region of the frame as transmitted: a
// separator before every field, followed by the field bytes. This is the
// range the LRC covers.
func (r *Response) Body() []byte {
	var buf []byte
	for _, f := range r.fields {
		buf = append(buf, SEP)
		buf = append(buf, f.data...)
	}
	return buf
}
