// Package classify identifies which cipher family most likely produced a
// ciphertext. It drives layered decryption: each unwrapped layer is
// reclassified until the text scores as plaintext.
package classify

import (
	"strings"
	"unicode"

	"github.com/scytale-dev/scytale/internal/alphabet"
	"github.com/scytale-dev/scytale/internal/textstat"
)

// CipherType names a cipher family the classifier can identify.
type CipherType string

const (
	Transposition CipherType = "transposition"
	Substitution  CipherType = "substitution"
	Base64        CipherType = "base64"
	Morse         CipherType = "morse"
	Hex           CipherType = "hex"
	Octal         CipherType = "octal"
)

// Transposition rearranges letters without replacing them, so the
// ciphertext keeps an unusually high self-coincidence.
const (
	transpositionIndexLow  = 0.6
	transpositionIndexHigh = 0.75
)

// Case-preserving encodings mix upper and lower case freely; ciphertext
// derived from natural language is overwhelmingly single-case. Texts
// whose uppercase count stays under this fraction of the lowercase
// count are treated as language-derived.
const uppercaseNoiseRatio = 0.1

// BestMatch returns the cipher family that most likely produced
// ciphertext. Families are tried in a fixed priority order and the
// first match wins: Morse, octal, hex, letter ciphers (transposition or
// substitution by index of coincidence), then Base64. ok is false when
// no family matches or the input is empty.
func BestMatch(ciphertext string) (CipherType, bool) {
	if strings.TrimSpace(ciphertext) == "" {
		return "", false
	}

	if alphabet.Raw(ciphertext).SubsetOf(alphabet.MorseSet) {
		return Morse, true
	}

	characters := alphabet.Of(ciphertext)
	if characters.Len() > 0 {
		if characters.SubsetOf(alphabet.OctalSet) {
			return Octal, true
		}
		if characters.SubsetOf(alphabet.HexSet) {
			return Hex, true
		}
	}

	if uppers, lowers := caseCounts(ciphertext); float64(uppers) < uppercaseNoiseRatio*float64(lowers) {
		ioc := textstat.IndexOfCoincidence(ciphertext)
		if ioc >= transpositionIndexLow && ioc <= transpositionIndexHigh {
			return Transposition, true
		}
		return Substitution, true
	}

	if isBase64Like(ciphertext) {
		return Base64, true
	}

	return "", false
}

func caseCounts(text string) (uppers, lowers int) {
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			uppers++
		case unicode.IsLower(r):
			lowers++
		}
	}
	return uppers, lowers
}

// isBase64Like reports whether text contains only Base64 alphabet
// characters, tolerating '=' padding and whitespace.
func isBase64Like(text string) bool {
	seen := 0
	for _, r := range text {
		if unicode.IsSpace(r) || r == '=' {
			continue
		}
		if !alphabet.Base64Set.Contains(r) {
			return false
		}
		seen++
	}
	return seen > 0
}
