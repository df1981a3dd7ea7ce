package protocol

import (
	"bytes"
	"testing"
)

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
		expected []byte
	}{
		{
			name:     "no elements",
			elements: nil,
			expected: []byte{},
		},
		{
			name:     "single raw byte",
			elements: []Element{Raw(ENQ)},
			expected: []byte{ENQ},
		},
		{
			name:     "text maps each character to its ordinal",
			elements: []Element{Text("AB")},
			expected: []byte{'A', 'B'},
		},
		{
			name:     "empty text contributes nothing",
			elements: []Element{Raw(STX), Text(""), Raw(ETX)},
			expected: []byte{STX, ETX},
		},
		{
			name: "mixed raw and text, no implicit framing",
			elements: []Element{
				Raw(STX), Raw(SEP), Text("RD"), Raw(SEP), Text("01"), Raw(ETX),
			},
			expected: []byte{STX, SEP, 'R', 'D', SEP, '0', '1', ETX},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EncodeFrame(tt.elements)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("EncodeFrame() = % 02X, want % 02X", result, tt.expected)
			}
		})
	}
}

func TestEncodeFrameDeterminism(t *testing.T) {
	elements := []Element{Raw(STX), Raw(SEP), Text("DT"), Raw(SEP), Text("1405230826"), Raw(ETX)}

	first := EncodeFrame(elements)
	second := EncodeFrame(elements)
	if !bytes.Equal(first, second) {
		t.Errorf("encoding the same elements twice differed: % 02X vs % 02X", first, second)
	}
}
