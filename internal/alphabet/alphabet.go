// Package alphabet provides the ordered alphabets, validated indices, and
// character-set primitives that the classical cipher implementations and the
// cipher-type classifier are built on.
package alphabet

import (
	"fmt"
	"strings"
	"unicode"
)

// Size is the length of a classical cipher alphabet.
const Size = 26

// ErrInvalidAlphabet is returned when an alphabet spec is not exactly 26
// unique alphabetic characters.
var ErrInvalidAlphabet = fmt.Errorf("invalid alphabet")

// Alphabet is an immutable ordering of symbols. Cipher alphabets are exactly
// 26 letters; alphabets derived from sample text may be any length and are
// used for character inventories rather than substitution.
type Alphabet struct {
	letters []rune
	cased   bool
}

// Cased builds a case-sensitive cipher alphabet from exactly 26 unique
// alphabetic characters.
func Cased(spec string) (*Alphabet, error) {
	letters, err := validateLetters(spec)
	if err != nil {
		return nil, err
	}
	return &Alphabet{letters: letters, cased: true}, nil
}

// Caseless builds a cipher alphabet that folds lookups to uppercase. The spec
// is uppercased before validation.
func Caseless(spec string) (*Alphabet, error) {
	letters, err := validateLetters(strings.ToUpper(spec))
	if err != nil {
		return nil, err
	}
	return &Alphabet{letters: letters, cased: false}, nil
}

// OfText derives an alphabet from the unique characters of text in first-seen
// order. No length restriction applies; the result is case-sensitive.
func OfText(text string) *Alphabet {
	seen := make(map[rune]bool)
	letters := make([]rune, 0, len(text))
	for _, r := range text {
		if !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}
	return &Alphabet{letters: letters, cased: true}
}

func validateLetters(spec string) ([]rune, error) {
	letters := []rune(spec)
	if len(letters) != Size {
		return nil, fmt.Errorf("%w: expected %d letters, got %d in %q", ErrInvalidAlphabet, Size, len(letters), spec)
	}
	seen := make(map[rune]bool, Size)
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: non-alphabetic character %q in %q", ErrInvalidAlphabet, r, spec)
		}
		if seen[r] {
			return nil, fmt.Errorf("%w: duplicate letter %q in %q", ErrInvalidAlphabet, r, spec)
		}
		seen[r] = true
	}
	return letters, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.letters)
}

// String returns the alphabet's symbols in order.
func (a *Alphabet) String() string {
	return string(a.letters)
}

// Characters returns a copy of the alphabet's symbols in order.
func (a *Alphabet) Characters() []rune {
	out := make([]rune, len(a.letters))
	copy(out, a.letters)
	return out
}

// IndexOf returns the 1-based position of c. Caseless alphabets fold c to
// uppercase first. The second return is false when c is not in the alphabet.
func (a *Alphabet) IndexOf(c rune) (Index, bool) {
	if !a.cased {
		c = unicode.ToUpper(c)
	}
	for i, r := range a.letters {
		if r == c {
			return Index(i + 1), true
		}
	}
	return 0, false
}

// LetterAt returns the symbol at the given 1-based index. The index type is
// validated at construction, so lookups on a full 26-letter alphabet cannot
// go out of range.
func (a *Alphabet) LetterAt(i Index) rune {
	return a.letters[int(i)-1]
}

// Shift returns a new alphabet rotated left by n positions, so that
// Shift(1) of ABC..Z begins with B. Shifting a cipher alphabet by each of
// 0..25 yields the rows of its tabula recta.
func (a *Alphabet) Shift(n int) *Alphabet {
	size := len(a.letters)
	n = ((n % size) + size) % size
	letters := make([]rune, size)
	for i := range a.letters {
		letters[i] = a.letters[(i+n)%size]
	}
	return &Alphabet{letters: letters, cased: a.cased}
}

// Union merges two alphabets, preserving first-seen order across both and
// removing duplicates.
func (a *Alphabet) Union(other *Alphabet) *Alphabet {
	return OfText(string(a.letters) + string(other.letters))
}

// RandomIndexOfCoincidence returns the expected index of coincidence of an
// unbounded uniformly random string over this alphabet, which is 1/len.
func (a *Alphabet) RandomIndexOfCoincidence() float64 {
	return 1 / float64(len(a.letters))
}

// Process-wide shared alphabets. Built once and never mutated.
var (
	Lowercase         = OfText("abcdefghijklmnopqrstuvwxyz")
	Capital           = OfText("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Letters           = Capital.Union(Lowercase)
	Numbers           = OfText("1234567890")
	LettersAndNumbers = Letters.Union(Numbers)
	Base64Charset     = LettersAndNumbers.Union(OfText("+/"))
	ASCII             = asciiAlphabet()
)

// StandardLetters spells the A-Z alphabet for callers that configure
// ciphers from a string spec.
const StandardLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Standard is the canonical caseless A-Z alphabet used by the classical
// ciphers when no custom alphabet is configured.
var Standard = mustCaseless(StandardLetters)

func mustCaseless(spec string) *Alphabet {
	a, err := Caseless(spec)
	if err != nil {
		panic(err)
	}
	return a
}

func asciiAlphabet() *Alphabet {
	letters := make([]rune, 128)
	for i := range letters {
		letters[i] = rune(i)
	}
	return &Alphabet{letters: letters, cased: true}
}
