package cipher

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/scytale-dev/scytale/internal/alphabet"
)

// RunningKey enciphers text with Vigenere arithmetic but consumes its
// key linearly instead of cycling it, so the key must be at least as
// long as the text being processed.
type RunningKey struct {
	alphabet *alphabet.Alphabet
	key      []rune
}

// RunningKeyBuilder assembles a running key cipher. Setter errors are
// held until Build so calls chain without intermediate checks.
type RunningKeyBuilder struct {
	alphabet *alphabet.Alphabet
	key      string
	err      error
}

// NewRunningKey starts a running key builder.
func NewRunningKey() *RunningKeyBuilder {
	return &RunningKeyBuilder{}
}

// Alphabet sets the cipher alphabet, folded for caseless lookups.
func (b *RunningKeyBuilder) Alphabet(spec string) *RunningKeyBuilder {
	if b.err != nil {
		return b
	}
	a, err := alphabet.Caseless(spec)
	if err != nil {
		b.err = fmt.Errorf("building running key cipher: %w", err)
		return b
	}
	b.alphabet = a
	return b
}

// Key sets the key text, typically a passage at least as long as the
// message.
func (b *RunningKeyBuilder) Key(key string) *RunningKeyBuilder {
	if b.err != nil {
		return b
	}
	b.key = key
	return b
}

// Build validates the configuration and returns the cipher.
func (b *RunningKeyBuilder) Build() (*RunningKey, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.key == "" {
		return nil, fmt.Errorf("building running key cipher: no key provided")
	}
	if b.alphabet == nil {
		return nil, fmt.Errorf("building running key cipher: no alphabet provided")
	}
	return &RunningKey{alphabet: b.alphabet, key: []rune(b.key)}, nil
}

// Encrypt shifts each letter forward by its key letter's position. The
// key is consumed one letter per alphabetic character and never cycles.
func (r *RunningKey) Encrypt(plaintext string) (string, error) {
	if len(r.key) < len([]rune(plaintext)) {
		return "", fmt.Errorf("running key is shorter than the plaintext; use a vigenere cipher for repeating keys")
	}
	return r.transform(plaintext, func(text, key alphabet.Index) alphabet.Index {
		return text.AddMod(key.Int() - 1)
	})
}

// Decrypt shifts each letter back by its key letter's position.
func (r *RunningKey) Decrypt(ciphertext string) (string, error) {
	if len(r.key) < len([]rune(ciphertext)) {
		return "", fmt.Errorf("running key is shorter than the ciphertext; use a vigenere cipher for repeating keys")
	}
	return r.transform(ciphertext, func(text, key alphabet.Index) alphabet.Index {
		return text.SubMod(key.Int() - 1)
	})
}

func (r *RunningKey) transform(text string, combine func(text, key alphabet.Index) alphabet.Index) (string, error) {
	var out strings.Builder
	keyIndex := 0

	for _, c := range text {
		if !unicode.IsLetter(c) {
			out.WriteRune(c)
			continue
		}

		textIdx, ok := r.alphabet.IndexOf(c)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrCharacterNotInAlphabet, c)
		}
		keyRune := r.key[keyIndex]
		keyIdx, ok := r.alphabet.IndexOf(keyRune)
		if !ok {
			return "", fmt.Errorf("key %w: %q", ErrCharacterNotInAlphabet, keyRune)
		}
		keyIndex++

		result := r.alphabet.LetterAt(combine(textIdx, keyIdx))
		if unicode.IsUpper(c) {
			result = unicode.ToUpper(result)
		} else {
			result = unicode.ToLower(result)
		}
		out.WriteRune(result)
	}

	return out.String(), nil
}
