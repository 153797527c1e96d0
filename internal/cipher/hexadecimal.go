package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeHex renders each byte of text as a space-separated, zero-padded
// three-digit hex group, matching the octal codec's shape.
func EncodeHex(text string) string {
	var out strings.Builder
	for i := 0; i < len(text); i++ {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%03x", text[i])
	}
	return out.String()
}

// DecodeHex parses space-separated hex groups back into text. Any
// unparsable group aborts the decode.
func DecodeHex(text string) (string, error) {
	var out strings.Builder
	for _, group := range strings.Fields(text) {
		code, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid hex group %q: %w", group, err)
		}
		out.WriteByte(byte(code))
	}
	return out.String(), nil
}
