package alphabet

import (
	"strings"
	"unicode"
)

// CharacterSet is an unordered set of symbols appearing in a text. Unlike an
// Alphabet it carries no ordering, and it supports the subset comparisons the
// cipher-type classifier is built on.
type CharacterSet struct {
	runes map[rune]struct{}
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Of returns the set of alphanumeric characters appearing in text. Whitespace,
// punctuation, and any other symbols are ignored.
func Of(text string) CharacterSet {
	runes := make(map[rune]struct{})
	for _, r := range text {
		if strings.ContainsRune(alphanumeric, r) {
			runes[r] = struct{}{}
		}
	}
	return CharacterSet{runes: runes}
}

// Raw returns the set of every character appearing in text, including
// whitespace and punctuation.
func Raw(text string) CharacterSet {
	runes := make(map[rune]struct{})
	for _, r := range text {
		runes[r] = struct{}{}
	}
	return CharacterSet{runes: runes}
}

// Contains reports whether r is in the set.
func (s CharacterSet) Contains(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

// Len returns the number of distinct characters in the set.
func (s CharacterSet) Len() int {
	return len(s.runes)
}

// Characters returns the set's members in unspecified order.
func (s CharacterSet) Characters() []rune {
	out := make([]rune, 0, len(s.runes))
	for r := range s.runes {
		out = append(out, r)
	}
	return out
}

// Union returns a new set holding the members of both sets.
func (s CharacterSet) Union(other CharacterSet) CharacterSet {
	runes := make(map[rune]struct{}, len(s.runes)+len(other.runes))
	for r := range s.runes {
		runes[r] = struct{}{}
	}
	for r := range other.runes {
		runes[r] = struct{}{}
	}
	return CharacterSet{runes: runes}
}

// SubsetOf reports whether every member of s is also in other. The empty set
// is a subset of everything.
func (s CharacterSet) SubsetOf(other CharacterSet) bool {
	for r := range s.runes {
		if !other.Contains(r) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same characters.
func (s CharacterSet) Equal(other CharacterSet) bool {
	return len(s.runes) == len(other.runes) && s.SubsetOf(other)
}

// IsAlphabetic reports whether every member is a letter.
func (s CharacterSet) IsAlphabetic() bool {
	for r := range s.runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every member is a letter or a digit.
func (s CharacterSet) IsAlphanumeric() bool {
	for r := range s.runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Reference sets the classifier compares ciphertext inventories against.
var (
	LowercaseSet    = Of("abcdefghijklmnopqrstuvwxyz")
	UppercaseSet    = Of("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	AlphabeticSet   = Of(alphanumeric[:52])
	AlphanumericSet = Of(alphanumeric)
	Base64Set       = Raw("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+/")
	MorseSet        = Raw("-./ \t\r\n")
	NumericSet      = Of("0123456789")
	HexSet          = Of("0123456789ABCDEFabcdef")
	OctalSet        = Of("01234567")
	BinarySet       = Of("01")
)
