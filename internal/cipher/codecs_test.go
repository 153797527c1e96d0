package cipher

import (
	"strings"
	"testing"
)

func TestEncodeOctal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple text", "hi", "150 151"},
		{"word", "Hello", "110 145 154 154 157"},
		{"empty string", "", ""},
		{"multibyte rune", "é", "303 251"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeOctal(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecodeOctal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"simple text", "150 151", "hi", false},
		{"word", "110 145 154 154 157", "Hello", false},
		{"extra whitespace", "  150\t151\n", "hi", false},
		{"empty string", "", "", false},
		{"multibyte rune", "303 251", "é", false},
		{"digit out of base", "190", "", true},
		{"value out of range", "777", "", true},
		{"not numeric", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOctal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEncodeHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple text", "hi", "068 069"},
		{"word", "Hello", "048 065 06c 06c 06f"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeHex(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"simple text", "068 069", "hi", false},
		{"uppercase digits", "048 065 06C 06C 06F", "Hello", false},
		{"two digit groups", "68 69", "hi", false},
		{"empty string", "", "", false},
		{"value out of range", "1ff", "", true},
		{"not hex", "zz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBase64Codec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple text", "Hello, World!", "SGVsbG8sIFdvcmxkIQ=="},
		{"special chars", "Test@123!#$", "VGVzdEAxMjMhIyQ="},
		{"empty string", "", ""},
		{"unicode", "Hello 世界", "SGVsbG8g5LiW55WM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeBase64(tt.input)
			if encoded != tt.expected {
				t.Errorf("encode: expected %q, got %q", tt.expected, encoded)
			}

			decoded, err := DecodeBase64(encoded)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded != tt.input {
				t.Errorf("decode: expected %q, got %q", tt.input, decoded)
			}
		})
	}
}

func TestDecodeBase64LineWrapped(t *testing.T) {
	// MIME-style transfer wraps Base64 across lines
	wrapped := "SGVsbG8s\nIFdvcmxk\nIQ=="
	decoded, err := DecodeBase64(wrapped)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != "Hello, World!" {
		t.Errorf("expected %q, got %q", "Hello, World!", decoded)
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("!!!not base64!!!"); err == nil {
		t.Fatal("expected error for invalid input")
	}
}

func TestBinaryCodec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple text", "hi", "01101000 01101001"},
		{"mixed case", "Hi", "01001000 01101001"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeBinary(tt.input)
			if encoded != tt.expected {
				t.Errorf("encode: expected %q, got %q", tt.expected, encoded)
			}

			decoded, err := DecodeBinary(encoded)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded != tt.input {
				t.Errorf("decode: expected %q, got %q", tt.input, decoded)
			}
		})
	}
}

func TestDecodeBinary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"continuous bits", "0110100001101001", "hi", false},
		{"ragged grouping", "01101000 01101001", "hi", false},
		{"not a multiple of eight", "0110100", "", true},
		{"non bit character", "01101000 0110100x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBinary(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOctalHexRoundtrip(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog",
		"punctuation: !?,;",
		"tabs\tand\nnewlines",
	}

	for _, input := range inputs {
		octal, err := DecodeOctal(EncodeOctal(input))
		if err != nil {
			t.Fatalf("octal roundtrip failed for %q: %v", input, err)
		}
		if octal != input {
			t.Errorf("octal roundtrip: expected %q, got %q", input, octal)
		}

		hex, err := DecodeHex(EncodeHex(input))
		if err != nil {
			t.Fatalf("hex roundtrip failed for %q: %v", input, err)
		}
		if hex != input {
			t.Errorf("hex roundtrip: expected %q, got %q", input, hex)
		}
	}
}

func TestCodecOutputsAreDistinct(t *testing.T) {
	// Octal and hex share their three digit group shape, so make sure
	// the same payload actually encodes differently.
	input := strings.Repeat("z", 4)
	if EncodeOctal(input) == EncodeHex(input) {
		t.Error("octal and hex encodings should differ")
	}
}
