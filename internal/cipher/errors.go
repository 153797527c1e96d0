package cipher

import "errors"

// ErrCharacterNotInAlphabet reports a letter the configured alphabet
// cannot index. Keyed cipher operations wrap it with the offending
// character.
var ErrCharacterNotInAlphabet = errors.New("character not in alphabet")
