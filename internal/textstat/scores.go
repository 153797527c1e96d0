package textstat

import (
	"math"
	"sort"
)

// maxFrequencyGap is the largest possible difference between two letter
// proportions given the reference table (1 - the rarest English letter), used
// to normalize per-letter differences into [0, 1].
const maxFrequencyGap = 0.99926

// DistributionScore rates how closely the shape of text's character
// frequency distribution matches English, ignoring which character carries
// which frequency. A monoalphabetic substitution of English prose scores
// nearly perfectly here because substitution permutes identities but
// preserves the distribution.
func DistributionScore(text string) float64 {
	observed := make([]float64, 0)
	for _, f := range Frequencies(text) {
		observed = append(observed, f)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(observed)))

	reference := make([]float64, 0, len(englishFrequency))
	for _, f := range englishFrequency {
		reference = append(reference, f)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(reference)))

	return shapeScore(observed, reference)
}

// CharacterScore rates how closely each character's observed frequency
// matches the English reference frequency for that same character. Characters
// absent from the reference table are skipped; texts with no letters score 0.
func CharacterScore(text string) float64 {
	sum := 0.0
	n := 0
	for r, frequency := range Frequencies(text) {
		reference, ok := englishFrequency[r]
		if !ok {
			continue
		}
		sum += 1 - math.Abs(frequency-reference)/maxFrequencyGap
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// BigramDistributionScore rates how closely the shape of text's bigram
// distribution matches the English bigram reference. Texts with no adjacent
// letter pairs score 0.
func BigramDistributionScore(text string) float64 {
	observed := make([]float64, 0)
	for _, f := range BigramFrequencies(text) {
		observed = append(observed, f)
	}
	if len(observed) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(observed)))

	reference := make([]float64, 0, len(englishBigramFrequency))
	for _, f := range englishBigramFrequency {
		reference = append(reference, f)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(reference)))

	return shapeScore(observed, reference)
}

// Entropy returns the Shannon entropy of text in bits per character.
func Entropy(text string) float64 {
	if len(text) == 0 {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// shapeScore zips two descending frequency rankings and averages the
// normalized per-rank differences over the shared prefix.
func shapeScore(observed, reference []float64) float64 {
	n := len(observed)
	if len(reference) < n {
		n = len(reference)
	}
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += 1 - math.Abs(observed[i]-reference[i])/maxFrequencyGap
	}
	return sum / float64(n)
}
