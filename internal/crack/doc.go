// Package crack recovers keys and settings from ciphertext alone. It
// contains the brute-force searches of the toolkit: the two-stage
// Enigma settings search, the Gronsfeld key search, and the layered
// decryption loop that peels stacked encodings. All searches take a
// context and stop early when it is canceled, and every open-ended
// search carries an explicit bound so exhaustion surfaces as
// ErrSearchExhausted instead of running forever.
package crack

import "errors"

var (
	// ErrSearchExhausted reports a bounded search that ran out of
	// candidates or layers before finding an acceptable plaintext.
	ErrSearchExhausted = errors.New("search exhausted")

	// ErrUnknownCipherType reports text no cipher family matched.
	ErrUnknownCipherType = errors.New("unrecognized cipher type")

	// ErrUnsupportedLayer reports an identified cipher family that has
	// no keyless decryption to peel it with.
	ErrUnsupportedLayer = errors.New("unsupported cipher layer")
)
