// Package textstat computes the letter statistics the cipher toolkit runs
// on: index of coincidence, frequency histograms, and English-likeness
// scores. The index of coincidence is the load-bearing signal here; it
// drives both cipher-family classification and candidate-plaintext scoring.
package textstat

import "unicode"

// IndexOfCoincidence returns the probability that two randomly chosen
// letters of text are equal, computed case-insensitively over the 26 Latin
// letters. English prose sits near 0.0667, uniformly random text near
// 0.0385. Texts with fewer than two letters score 0.
func IndexOfCoincidence(text string) float64 {
	var counts [26]int
	total := 0

	for _, r := range text {
		r = unicode.ToLower(r)
		if r >= 'a' && r <= 'z' {
			counts[r-'a']++
			total++
		}
	}

	if total < 2 {
		return 0
	}

	numerator := 0
	for _, c := range counts {
		numerator += c * (c - 1)
	}

	return float64(numerator) / float64(total*(total-1))
}
