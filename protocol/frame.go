package protocol

// elementKind tags the variant held by an Element.
type elementKind uint8

const (
	rawElement elementKind = iota
	textElement
)

// Element is one item of an outgoing frame: either a single raw byte or an
// ASCII text segment. Framing bytes (STX, ETX, SEP, checksum) are never
// inserted implicitly; commands include them as raw elements.
type Element struct {
	kind elementKind
	raw  byte
	text string
}

// Raw returns an Element that encodes to exactly one byte.
func Raw(b byte) Element {
	return Element{kind: rawElement, raw: b}
}

// Text returns an Element that encodes to one byte per character of s.
func Text(s string) Element {
	return Element{kind: textElement, text: s}
}

// EncodeFrame flattens elements into the byte buffer handed to the transport.
// Encoding is deterministic and has no failure cases.
func EncodeFrame(elements []Element) []byte {
	size := 0
	for _, e := range elements {
		if e.kind == textElement {
			size += len(e.text)
		} else {
			size++
		}
	}

	buf := make([]byte, 0, size)
	for _, e := range elements {
		switch e.kind {
		case textElement:
			buf = append(buf, e.text...)
		default:
			buf = append(buf, e.raw)
		}
	}
	return buf
}
