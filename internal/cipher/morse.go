package cipher

import (
	"fmt"
	"strings"
)

// morseAlphabet maps characters to their ITU Morse codes.
var morseAlphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

// morseCodes is the reverse lookup, code to character.
var morseCodes = func() map[string]rune {
	codes := make(map[string]rune, len(morseAlphabet))
	for character, code := range morseAlphabet {
		codes[code] = character
	}
	return codes
}()

// EncodeMorse renders text as ITU Morse: letters separated by single
// spaces, words by " / ". Input is uppercased first; characters without
// a Morse code (including line breaks) are dropped.
func EncodeMorse(text string) string {
	tokens := make([]string, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if r == ' ' {
			tokens = append(tokens, "/")
			continue
		}
		if code, ok := morseAlphabet[r]; ok {
			tokens = append(tokens, code)
		}
	}
	return strings.Join(tokens, " ")
}

// DecodeMorse maps whitespace-separated Morse tokens back to text; "/"
// becomes a space. An unknown token aborts the decode.
func DecodeMorse(text string) (string, error) {
	var out strings.Builder
	for _, token := range strings.Fields(text) {
		if token == "/" {
			out.WriteByte(' ')
			continue
		}
		character, ok := morseCodes[token]
		if !ok {
			return "", fmt.Errorf("unknown morse token %q", token)
		}
		out.WriteRune(character)
	}
	return out.String(), nil
}
