// Package dictionary rates words by how common they are in English. It
// embeds a word list ranked by descending corpus frequency and exposes a
// commonality score used as one signal in plaintext scoring.
package dictionary

import (
	_ "embed"
	"strings"
	"unicode"
)

//go:embed words.txt
var rawWords string

// The list is loaded once at startup and never mutated. Lookups are
// exact; the list itself is lowercase.
var (
	words = strings.Fields(rawWords)
	ranks = rankWords(words)
)

func rankWords(words []string) map[string]int {
	ranked := make(map[string]int, len(words))
	for i, word := range words {
		if _, ok := ranked[word]; !ok {
			ranked[word] = i
		}
	}
	return ranked
}

// Size returns the number of words in the dictionary.
func Size() int {
	return len(words)
}

// IsCommonWord reports whether word appears in the dictionary.
func IsCommonWord(word string) bool {
	_, ok := ranks[word]
	return ok
}

// MostCommon returns the n most common words in descending frequency
// order. It returns the whole list when n exceeds the dictionary size.
func MostCommon(n int) []string {
	if n > len(words) {
		n = len(words)
	}
	if n < 0 {
		n = 0
	}
	return words[:n]
}

// CommonalityScore rates how common word is, in [0, 1]. The most common
// word scores 1; words absent from the dictionary score 0.
func CommonalityScore(word string) float64 {
	rank, ok := ranks[word]
	if !ok {
		return 0
	}
	return 1 - float64(rank)/float64(len(words))
}

// AverageCommonalityScore returns the mean commonality of the
// whitespace-separated words of text, lowercased and stripped of
// non-alphabetic characters. Text with no words scores 0.
func AverageCommonalityScore(text string) float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0
	}

	sum := 0.0
	for _, token := range tokens {
		sum += CommonalityScore(stripNonAlphabetic(token))
	}
	return sum / float64(len(tokens))
}

func stripNonAlphabetic(token string) string {
	var out strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}
