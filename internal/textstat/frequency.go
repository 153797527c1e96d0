package textstat

import (
	"math"
	"strings"
)

// Counts returns how many times each character appears in text, case-folded.
func Counts(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		counts[r]++
	}
	return counts
}

// Frequencies returns the proportion of text each character makes up,
// case-folded. Every rune counts, including whitespace and punctuation,
// so the values sum to 1 over the observed characters.
func Frequencies(text string) map[rune]float64 {
	counts := Counts(text)
	total := 0
	for _, c := range counts {
		total += c
	}

	frequencies := make(map[rune]float64, len(counts))
	for r, c := range counts {
		frequencies[r] = float64(c) / float64(total)
	}
	return frequencies
}

// BigramFrequencies returns the proportion each adjacent letter pair makes
// up of all letter pairs in text, case-folded. Pairs are counted only where
// both characters are Latin letters, so word boundaries and punctuation
// break pairs rather than joining across them.
func BigramFrequencies(text string) map[string]float64 {
	folded := []rune(strings.ToLower(text))
	counts := make(map[string]int)
	total := 0

	for i := 0; i+1 < len(folded); i++ {
		a, b := folded[i], folded[i+1]
		if a < 'a' || a > 'z' || b < 'a' || b > 'z' {
			continue
		}
		counts[string([]rune{a, b})]++
		total++
	}

	frequencies := make(map[string]float64, len(counts))
	for pair, c := range counts {
		frequencies[pair] = float64(c) / float64(total)
	}
	return frequencies
}

// ClosestEnglishLetter returns the letter whose English frequency is nearest
// to the given proportion. Useful inputs sit roughly in [0.00074, 0.127],
// the z..e range of the reference table.
func ClosestEnglishLetter(frequency float64) rune {
	best := 'e'
	bestDiff := math.Inf(1)
	for _, r := range "abcdefghijklmnopqrstuvwxyz" {
		diff := math.Abs(englishFrequency[r] - frequency)
		if diff < bestDiff {
			best = r
			bestDiff = diff
		}
	}
	return best
}

// MappedToEnglish replaces each character of text with the unused English
// letter whose reference frequency is closest to the character's observed
// frequency. Each target letter is assigned at most once, so the result is
// a candidate monoalphabetic substitution keyed purely by frequency rank.
func MappedToEnglish(text string) string {
	available := make(map[rune]float64, len(englishFrequency))
	for r, f := range englishFrequency {
		available[r] = f
	}

	observed := Frequencies(text)
	assigned := make(map[rune]rune)

	var out strings.Builder
	for _, r := range text {
		mapped, ok := assigned[r]
		if !ok && len(available) > 0 {
			mapped = closestAvailable(available, observed[r])
			delete(available, mapped)
			assigned[r] = mapped
			ok = true
		}
		if !ok {
			// More distinct input characters than target letters.
			mapped = r
		}
		out.WriteRune(mapped)
	}
	return out.String()
}

func closestAvailable(available map[rune]float64, frequency float64) rune {
	best := rune(0)
	bestDiff := math.Inf(1)
	for r, f := range available {
		diff := math.Abs(f - frequency)
		if diff < bestDiff || (diff == bestDiff && r < best) {
			best = r
			bestDiff = diff
		}
	}
	return best
}
