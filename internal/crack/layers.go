package crack

import (
	"context"
	"fmt"

	"github.com/scytale-dev/scytale/internal/cipher"
	"github.com/scytale-dev/scytale/internal/classify"
	"github.com/scytale-dev/scytale/internal/score"
	"github.com/scytale-dev/scytale/internal/textstat"
)

const (
	// DefaultMaxLayers bounds how deep layered decryption digs.
	DefaultMaxLayers = 10

	// DefaultTargetScore is the plaintext score at which unwrapping
	// declares the text decrypted.
	DefaultTargetScore = 0.8
)

// Polyalphabetic substitution flattens the index of coincidence toward
// random; substitution ciphertext inside this band gets the Gronsfeld
// key search, anything outside it has no keyless decryption here.
const (
	gronsfeldIndexLow  = 0.04
	gronsfeldIndexHigh = 0.05
)

// Layer records one peeled encryption layer.
type Layer struct {
	Cipher classify.CipherType
	Output string
	Score  float64
}

// UnwrapResult is a fully unwrapped ciphertext with its layer trail.
// The last layer's output is the plaintext.
type UnwrapResult struct {
	Plaintext string
	Score     float64
	Layers    []Layer
}

// Unwrapper peels layered encryption by classifying the text,
// decrypting one layer, and repeating on the output until it reads as
// plaintext. Classification happens before scoring on every pass; the
// statistical score alone cannot be trusted to spot remaining layers,
// since dense encodings such as Base64 can score deceptively well.
type Unwrapper struct {
	maxLayers int
	target    float64
	gronsfeld *GronsfeldCracker
}

// UnwrapOption configures an Unwrapper.
type UnwrapOption func(*Unwrapper)

// WithMaxLayers caps how many layers Unwrap peels before giving up.
func WithMaxLayers(n int) UnwrapOption {
	return func(u *Unwrapper) {
		if n > 0 {
			u.maxLayers = n
		}
	}
}

// WithTargetScore overrides the score at which unwrapping stops.
func WithTargetScore(s float64) UnwrapOption {
	return func(u *Unwrapper) {
		if s > 0 {
			u.target = s
		}
	}
}

// WithGronsfeldCracker sets the key search used for substitution
// layers.
func WithGronsfeldCracker(c *GronsfeldCracker) UnwrapOption {
	return func(u *Unwrapper) {
		if c != nil {
			u.gronsfeld = c
		}
	}
}

// NewUnwrapper builds an unwrapper with the default layer cap, target
// score, and Gronsfeld search.
func NewUnwrapper(opts ...UnwrapOption) *Unwrapper {
	u := &Unwrapper{
		maxLayers: DefaultMaxLayers,
		target:    DefaultTargetScore,
		gronsfeld: NewGronsfeldCracker(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Unwrap classifies ciphertext, decrypts the identified layer, and
// feeds the output back in until it scores as plaintext. It fails with
// ErrUnknownCipherType when no family matches, ErrUnsupportedLayer when
// the identified family cannot be decrypted without a key, and
// ErrSearchExhausted when the layer cap runs out first.
func (u *Unwrapper) Unwrap(ctx context.Context, ciphertext string) (*UnwrapResult, error) {
	current := ciphertext
	result := &UnwrapResult{}

	for depth := 1; depth <= u.maxLayers; depth++ {
		family, ok := classify.BestMatch(current)
		if !ok {
			return nil, fmt.Errorf("layer %d: %w", depth, ErrUnknownCipherType)
		}

		output, err := u.decryptLayer(ctx, family, current)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", depth, family, err)
		}

		layerScore := score.NewPossiblePlaintext(output).Score()
		result.Layers = append(result.Layers, Layer{Cipher: family, Output: output, Score: layerScore})

		if layerScore >= u.target {
			result.Plaintext = output
			result.Score = layerScore
			return result, nil
		}
		current = output
	}

	return nil, fmt.Errorf("no plaintext after %d layers: %w", u.maxLayers, ErrSearchExhausted)
}

func (u *Unwrapper) decryptLayer(ctx context.Context, family classify.CipherType, text string) (string, error) {
	switch family {
	case classify.Octal:
		return u.runOperation(ctx, "octal_decode", text)
	case classify.Hex:
		return u.runOperation(ctx, "hex_decode", text)
	case classify.Base64:
		return u.runOperation(ctx, "base64_decode", text)
	case classify.Morse:
		return u.runOperation(ctx, "morse_decode", text)
	case classify.Substitution:
		return u.crackSubstitution(ctx, text)
	case classify.Transposition:
		return "", fmt.Errorf("%w: transposition needs its column key", ErrUnsupportedLayer)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedLayer, family)
}

func (u *Unwrapper) runOperation(ctx context.Context, name, text string) (string, error) {
	op, ok := cipher.GetOperation(name)
	if !ok {
		return "", fmt.Errorf("operation %s not registered", name)
	}
	out, err := op.Execute(ctx, []byte(text), nil)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// crackSubstitution peels a substitution-classified layer. Only the
// polyalphabetic band covered by the Gronsfeld search is supported.
func (u *Unwrapper) crackSubstitution(ctx context.Context, text string) (string, error) {
	ioc := textstat.IndexOfCoincidence(text)
	if ioc < gronsfeldIndexLow || ioc > gronsfeldIndexHigh {
		return "", fmt.Errorf("%w: substitution with index of coincidence %.4f", ErrUnsupportedLayer, ioc)
	}

	key, err := u.gronsfeld.Crack(ctx, text)
	if err != nil {
		return "", err
	}
	return key.Plaintext, nil
}
