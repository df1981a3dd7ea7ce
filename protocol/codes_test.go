package protocol

import "testing"

func TestLookupErrorCode(t *testing.T) {
	known := []string{"ES", "NC", "NF", "OV", "EP", "EF", "TD", "ED", "EA", "OS", "EO", "EG"}
	for _, code := range known {
		desc, ok := LookupErrorCode(code)
		if !ok {
			t.Errorf("code %q missing from taxonomy", code)
		}
		if desc == "" {
			t.Errorf("code %q has an empty description", code)
		}
	}

	if len(errorCodes) != len(known) {
		t.Errorf("taxonomy has %d codes, want %d", len(errorCodes), len(known))
	}

	if _, ok := LookupErrorCode("XX"); ok {
		t.Error("unknown code must not resolve")
	}
	if _, ok := LookupErrorCode("ov"); ok {
		t.Error("codes are case-sensitive")
	}
}
