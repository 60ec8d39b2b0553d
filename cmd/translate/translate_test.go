package translate

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SOS", "... --- ..."},
		{"sos", "... --- ..."},
		{"E", "."},
		{"HELLO WORLD", ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."},
		{"73", "--... ...--"},
		{"a=b", ".- -...- -..."},
		{"HI!", ".... .."}, // unmapped bytes are dropped
		{"", ""},
	}

	for _, tc := range tests {
		if got := encode(tc.input); got != tc.expected {
			t.Errorf("encode(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"... --- ...", "SOS"},
		{".", "E"},
		{".... . .-.. .-.. --- / .-- --- .-. .-.. -..", "HELLO WORLD"},
		{"--... ...--", "73"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := decode(tc.input); got != tc.expected {
			t.Errorf("decode(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{"SOS", "CQ CQ CQ", "THE QUICK BROWN FOX 0123456789", "73 = 88"}
	for _, input := range inputs {
		if got := decode(encode(input)); got != input {
			t.Errorf("decode(encode(%q)) = %q", input, got)
		}
	}
}
