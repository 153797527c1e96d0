package cipher

import "strings"

// CaesarShift shifts each Latin letter of text forward by shift
// positions, wrapping within its case. Negative shifts move backward;
// non-letters pass through unchanged.
func CaesarShift(text string, shift int) string {
	s := rune(((shift % 26) + 26) % 26)

	var out strings.Builder
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			out.WriteRune('A' + (r-'A'+s)%26)
		case r >= 'a' && r <= 'z':
			out.WriteRune('a' + (r-'a'+s)%26)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
