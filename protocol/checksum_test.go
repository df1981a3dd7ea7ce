package protocol

import "testing"

func TestComputeLRC(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected byte
	}{
		{
			name:     "empty body",
			body:     []byte{},
			expected: 0x00,
		},
		{
			name:     "single byte",
			body:     []byte{0x42},
			expected: 0x42,
		},
		{
			name:     "byte xored with itself cancels",
			body:     []byte{0x42, 0x42},
			expected: 0x00,
		},
		{
			name:     "separator and text field",
			body:     []byte{SEP, 'E', 'P'},
			expected: SEP ^ 'E' ^ 'P',
		},
		{
			name:     "order independent",
			body:     []byte{0x01, 0x02, 0x04, 0x08},
			expected: 0x0F,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeLRC(tt.body)
			if result != tt.expected {
				t.Errorf("ComputeLRC() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	good := &Response{
		fields:   []Field{{data: []byte("OK")}},
		checksum: ComputeLRC([]byte{SEP, 'O', 'K'}),
	}
	bad := &Response{
		fields:   []Field{{data: []byte("OK")}},
		checksum: 0xFF,
	}
	skipRequested := &Response{
		fields:   []Field{{data: []byte("OK")}},
		checksum: LRCSkip,
	}

	if !VerifyChecksum(good, false) {
		t.Error("expected matching checksum to verify")
	}
	if VerifyChecksum(bad, false) {
		t.Error("expected mismatched checksum to fail verification")
	}
	if !VerifyChecksum(bad, true) {
		t.Error("skip-checksum mode must pass regardless of byte content")
	}
	if !VerifyChecksum(skipRequested, false) {
		t.Error("received LRCSkip byte must bypass verification")
	}
}
