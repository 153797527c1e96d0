package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeBinary renders each byte of text as a space-separated 8-bit
// group.
func EncodeBinary(text string) string {
	var out strings.Builder
	for i := 0; i < len(text); i++ {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%08b", text[i])
	}
	return out.String()
}

// DecodeBinary parses 8-bit groups back into text. Whitespace is
// ignored, so both spaced and continuous input decode; a length not
// divisible by 8 or a non-bit character aborts the decode.
func DecodeBinary(text string) (string, error) {
	bits := strings.Join(strings.Fields(text), "")
	if len(bits)%8 != 0 {
		return "", fmt.Errorf("binary input has %d bits, not a multiple of 8", len(bits))
	}

	var out strings.Builder
	for i := 0; i < len(bits); i += 8 {
		code, err := strconv.ParseUint(bits[i:i+8], 2, 8)
		if err != nil {
			return "", fmt.Errorf("invalid binary group %q: %w", bits[i:i+8], err)
		}
		out.WriteByte(byte(code))
	}
	return out.String(), nil
}
