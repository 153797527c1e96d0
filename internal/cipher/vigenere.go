package cipher

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/scytale-dev/scytale/internal/alphabet"
)

// Vigenere enciphers text with a repeating letter key over a configured
// alphabet. Non-alphabetic characters pass through without consuming a
// key letter, and each output letter takes the case of its input.
type Vigenere struct {
	alphabet *alphabet.Alphabet
	key      []rune
}

// VigenereBuilder assembles a Vigenere cipher. Setter errors are held
// until Build so calls chain without intermediate checks.
type VigenereBuilder struct {
	alphabet *alphabet.Alphabet
	key      string
	err      error
}

// NewVigenere starts a Vigenere builder.
func NewVigenere() *VigenereBuilder {
	return &VigenereBuilder{}
}

// Alphabet sets the cipher alphabet, folded for caseless lookups.
func (b *VigenereBuilder) Alphabet(spec string) *VigenereBuilder {
	if b.err != nil {
		return b
	}
	a, err := alphabet.Caseless(spec)
	if err != nil {
		b.err = fmt.Errorf("building vigenere cipher: %w", err)
		return b
	}
	b.alphabet = a
	return b
}

// Key sets the cipher key.
func (b *VigenereBuilder) Key(key string) *VigenereBuilder {
	if b.err != nil {
		return b
	}
	b.key = key
	return b
}

// Build validates the configuration and returns the cipher.
func (b *VigenereBuilder) Build() (*Vigenere, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.key == "" {
		return nil, fmt.Errorf("building vigenere cipher: no key provided")
	}
	if b.alphabet == nil {
		return nil, fmt.Errorf("building vigenere cipher: no alphabet provided")
	}
	return &Vigenere{alphabet: b.alphabet, key: []rune(b.key)}, nil
}

// Encrypt shifts each letter forward by its key letter's position.
func (v *Vigenere) Encrypt(plaintext string) (string, error) {
	return v.transform(plaintext, func(text, key alphabet.Index) alphabet.Index {
		return text.AddMod(key.Int() - 1)
	})
}

// Decrypt shifts each letter back by its key letter's position.
func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	return v.transform(ciphertext, func(text, key alphabet.Index) alphabet.Index {
		return text.SubMod(key.Int() - 1)
	})
}

func (v *Vigenere) transform(text string, combine func(text, key alphabet.Index) alphabet.Index) (string, error) {
	var out strings.Builder
	keyIndex := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			out.WriteRune(r)
			continue
		}

		textIdx, ok := v.alphabet.IndexOf(r)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrCharacterNotInAlphabet, r)
		}
		keyRune := v.key[keyIndex%len(v.key)]
		keyIdx, ok := v.alphabet.IndexOf(keyRune)
		if !ok {
			return "", fmt.Errorf("key %w: %q", ErrCharacterNotInAlphabet, keyRune)
		}
		keyIndex++

		result := v.alphabet.LetterAt(combine(textIdx, keyIdx))
		if unicode.IsUpper(r) {
			result = unicode.ToUpper(result)
		} else {
			result = unicode.ToLower(result)
		}
		out.WriteRune(result)
	}

	return out.String(), nil
}
