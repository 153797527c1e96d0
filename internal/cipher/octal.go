package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeOctal renders each byte of text as a space-separated,
// zero-padded three-digit octal group.
func EncodeOctal(text string) string {
	var out strings.Builder
	for i := 0; i < len(text); i++ {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%03o", text[i])
	}
	return out.String()
}

// DecodeOctal parses space-separated octal groups back into text. Any
// unparsable group aborts the decode.
func DecodeOctal(text string) (string, error) {
	var out strings.Builder
	for _, group := range strings.Fields(text) {
		code, err := strconv.ParseUint(group, 8, 8)
		if err != nil {
			return "", fmt.Errorf("invalid octal group %q: %w", group, err)
		}
		out.WriteByte(byte(code))
	}
	return out.String(), nil
}
