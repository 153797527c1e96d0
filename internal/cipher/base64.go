package cipher

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 encodes text as standard padded Base64.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard Base64 text. Whitespace is stripped
// first, so line-wrapped input decodes cleanly.
func DecodeBase64(text string) (string, error) {
	stripped := strings.Join(strings.Fields(text), "")
	decoded, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		return "", fmt.Errorf("base64 decode failed: %w", err)
	}
	return string(decoded), nil
}
