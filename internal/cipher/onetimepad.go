package cipher

import (
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/scytale-dev/scytale/internal/alphabet"
)

// OneTimePadEncrypt encrypts plaintext with a freshly generated random
// A-Z key as long as the plaintext. The key never leaves the returned
// decryptor, and the decryptor works exactly once; a pad key reused
// across messages stops being a pad.
func OneTimePadEncrypt(plaintext string) (string, *OneTimePadDecryptor, error) {
	key, err := randomLetters(len([]rune(plaintext)))
	if err != nil {
		return "", nil, err
	}

	vigenere, err := NewVigenere().Alphabet(alphabet.StandardLetters).Key(key).Build()
	if err != nil {
		return "", nil, err
	}
	ciphertext, err := vigenere.Encrypt(plaintext)
	if err != nil {
		return "", nil, err
	}

	return ciphertext, &OneTimePadDecryptor{key: key}, nil
}

// OneTimePadDecryptor holds a pad key for a single decryption.
type OneTimePadDecryptor struct {
	mu   sync.Mutex
	key  string
	used bool
}

// Decrypt recovers the plaintext the pad was generated for. The second
// and later calls fail: the key is consumed by the first use.
func (d *OneTimePadDecryptor) Decrypt(ciphertext string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.used {
		return "", fmt.Errorf("one-time pad key has already been used")
	}
	d.used = true

	vigenere, err := NewVigenere().Alphabet(alphabet.StandardLetters).Key(d.key).Build()
	if err != nil {
		return "", err
	}
	return vigenere.Decrypt(ciphertext)
}

func randomLetters(n int) (string, error) {
	if n == 0 {
		return "", fmt.Errorf("cannot generate an empty pad key")
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating pad key: %w", err)
	}

	letters := make([]byte, n)
	for i, b := range buf {
		letters[i] = 'A' + b%26
	}
	return string(letters), nil
}
