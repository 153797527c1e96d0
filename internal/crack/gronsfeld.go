package crack

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/scytale-dev/scytale/internal/alphabet"
	"github.com/scytale-dev/scytale/internal/cipher"
	"github.com/scytale-dev/scytale/internal/score"
)

const (
	// DefaultMaxKeyDigits caps the unknown-key search; every added digit
	// multiplies the space by ten.
	DefaultMaxKeyDigits = 4

	// DefaultAcceptScore is the plaintext score at which the unknown-key
	// search stops looking.
	DefaultAcceptScore = 0.85
)

// GronsfeldKey is a recovered Gronsfeld key with its decryption.
type GronsfeldKey struct {
	Key       string
	Plaintext string
	Score     float64
}

// GronsfeldCracker recovers numeric Gronsfeld keys by scored brute
// force over a known alphabet.
type GronsfeldCracker struct {
	alphabet  string
	maxDigits int
	accept    float64
}

// GronsfeldOption configures a GronsfeldCracker.
type GronsfeldOption func(*GronsfeldCracker)

// WithAlphabet sets the cipher alphabet searched against.
func WithAlphabet(spec string) GronsfeldOption {
	return func(c *GronsfeldCracker) { c.alphabet = spec }
}

// WithMaxKeyDigits caps how long a key the unknown-key search tries.
func WithMaxKeyDigits(n int) GronsfeldOption {
	return func(c *GronsfeldCracker) {
		if n > 0 {
			c.maxDigits = n
		}
	}
}

// WithAcceptScore overrides the score at which the unknown-key search
// accepts a candidate.
func WithAcceptScore(s float64) GronsfeldOption {
	return func(c *GronsfeldCracker) {
		if s > 0 {
			c.accept = s
		}
	}
}

// NewGronsfeldCracker builds a cracker over the standard alphabet with
// the default key length cap and acceptance score.
func NewGronsfeldCracker(opts ...GronsfeldOption) *GronsfeldCracker {
	c := &GronsfeldCracker{
		alphabet:  alphabet.StandardLetters,
		maxDigits: DefaultMaxKeyDigits,
		accept:    DefaultAcceptScore,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CrackWithDigits recovers the key arrangement given the multiset of
// digits known to make it up. Every distinct permutation is tried and
// the highest-scoring decryption wins.
func (c *GronsfeldCracker) CrackWithDigits(ctx context.Context, ciphertext, digits string) (*GronsfeldKey, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, fmt.Errorf("empty ciphertext")
	}
	if digits == "" {
		return nil, fmt.Errorf("no key digits given")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("key digits %q are not numeric", digits)
		}
	}

	var best *GronsfeldKey
	for _, key := range digitPermutations(digits) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidate, err := c.tryKey(ciphertext, key)
		if err != nil {
			return nil, err
		}
		if best == nil || candidate.Score > best.Score {
			best = &candidate
		}
	}
	return best, nil
}

// Crack recovers a key knowing nothing about it, trying every digit
// string from one digit up to the configured cap in numeric order and
// returning the first candidate whose decryption scores above the
// acceptance threshold.
func (c *GronsfeldCracker) Crack(ctx context.Context, ciphertext string) (*GronsfeldKey, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, fmt.Errorf("empty ciphertext")
	}

	for length := 1; length <= c.maxDigits; length++ {
		limit := 1
		for i := 0; i < length; i++ {
			limit *= 10
		}
		for k := 0; k < limit; k++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			candidate, err := c.tryKey(ciphertext, fmt.Sprintf("%0*d", length, k))
			if err != nil {
				return nil, err
			}
			if candidate.Score > c.accept {
				return &candidate, nil
			}
		}
	}
	return nil, fmt.Errorf("no key of at most %d digits scored above %.2f: %w", c.maxDigits, c.accept, ErrSearchExhausted)
}

func (c *GronsfeldCracker) tryKey(ciphertext, key string) (GronsfeldKey, error) {
	g, err := cipher.NewGronsfeld().Alphabet(c.alphabet).Key(key).Build()
	if err != nil {
		return GronsfeldKey{}, err
	}
	plain, err := g.Decrypt(ciphertext)
	if err != nil {
		return GronsfeldKey{}, err
	}
	return GronsfeldKey{
		Key:       key,
		Plaintext: plain,
		Score:     score.NewPossiblePlaintext(plain).Score(),
	}, nil
}

// digitPermutations lists the distinct orderings of a digit multiset,
// in lexicographic order. Repeated digits do not produce repeated
// permutations.
func digitPermutations(digits string) []string {
	sorted := []byte(digits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var out []string
	used := make([]bool, len(sorted))
	current := make([]byte, 0, len(sorted))

	var permute func()
	permute = func() {
		if len(current) == len(sorted) {
			out = append(out, string(current))
			return
		}
		for i := 0; i < len(sorted); i++ {
			if used[i] || (i > 0 && sorted[i] == sorted[i-1] && !used[i-1]) {
				continue
			}
			used[i] = true
			current = append(current, sorted[i])
			permute()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	permute()
	return out
}
