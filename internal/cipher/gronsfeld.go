package cipher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/scytale-dev/scytale/internal/alphabet"
)

// Gronsfeld enciphers text like a Vigenere but with a numeric key: each
// letter shifts by the next key digit, cycling. Lowercase input stays
// lowercase; other input takes the alphabet's stored case.
type Gronsfeld struct {
	alphabet *alphabet.Alphabet
	key      []int
}

// GronsfeldBuilder assembles a Gronsfeld cipher. Setter errors are held
// until Build so calls chain without intermediate checks.
type GronsfeldBuilder struct {
	alphabet *alphabet.Alphabet
	key      []int
	err      error
}

// NewGronsfeld starts a Gronsfeld builder.
func NewGronsfeld() *GronsfeldBuilder {
	return &GronsfeldBuilder{}
}

// Alphabet sets the cipher alphabet, folded for caseless lookups.
func (b *GronsfeldBuilder) Alphabet(spec string) *GronsfeldBuilder {
	if b.err != nil {
		return b
	}
	a, err := alphabet.Caseless(spec)
	if err != nil {
		b.err = fmt.Errorf("building gronsfeld cipher: %w", err)
		return b
	}
	b.alphabet = a
	return b
}

// Key sets the key from a digit string. Leading zeros are significant.
func (b *GronsfeldBuilder) Key(key string) *GronsfeldBuilder {
	if b.err != nil {
		return b
	}
	digits := make([]int, 0, len(key))
	for _, r := range key {
		if r < '0' || r > '9' {
			b.err = fmt.Errorf("building gronsfeld cipher: key %q is not numeric", key)
			return b
		}
		digits = append(digits, int(r-'0'))
	}
	b.key = digits
	return b
}

// KeyNumber sets the key from a number's decimal digits.
func (b *GronsfeldBuilder) KeyNumber(key uint64) *GronsfeldBuilder {
	return b.Key(strconv.FormatUint(key, 10))
}

// Build validates the configuration and returns the cipher.
func (b *GronsfeldBuilder) Build() (*Gronsfeld, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.alphabet == nil {
		return nil, fmt.Errorf("building gronsfeld cipher: no alphabet set")
	}
	if len(b.key) == 0 {
		return nil, fmt.Errorf("building gronsfeld cipher: no key set")
	}
	return &Gronsfeld{alphabet: b.alphabet, key: b.key}, nil
}

// Encrypt shifts each letter forward by the next key digit.
func (g *Gronsfeld) Encrypt(plaintext string) (string, error) {
	return g.transform(plaintext, func(idx alphabet.Index, digit int) alphabet.Index {
		return idx.AddMod(digit)
	})
}

// Decrypt shifts each letter back by the next key digit.
func (g *Gronsfeld) Decrypt(ciphertext string) (string, error) {
	return g.transform(ciphertext, func(idx alphabet.Index, digit int) alphabet.Index {
		return idx.SubMod(digit)
	})
}

func (g *Gronsfeld) transform(text string, shift func(idx alphabet.Index, digit int) alphabet.Index) (string, error) {
	var out strings.Builder
	keyIndex := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			out.WriteRune(r)
			continue
		}

		idx, ok := g.alphabet.IndexOf(r)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrCharacterNotInAlphabet, r)
		}
		digit := g.key[keyIndex%len(g.key)]
		keyIndex++

		result := g.alphabet.LetterAt(shift(idx, digit))
		if unicode.IsLower(r) {
			result = unicode.ToLower(result)
		}
		out.WriteRune(result)
	}

	return out.String(), nil
}
