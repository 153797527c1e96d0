package textstat

import "math"

// Language identifies a natural language with a known reference index
// of coincidence for alphabetic text.
type Language string

const (
	English Language = "english"
	French  Language = "french"
	German  Language = "german"
	Italian Language = "italian"
	Russian Language = "russian"
	Spanish Language = "spanish"
)

// languages lists every known language in match-preference order.
// Ties in BestMatchLanguage resolve to the earlier entry.
var languages = []Language{English, French, German, Italian, Russian, Spanish}

// IndexOfCoincidence returns the expected index of coincidence for
// natural text written in the language. Unknown languages fall back to
// the English reference.
func (l Language) IndexOfCoincidence() float64 {
	switch l {
	case English:
		return 0.0667
	case French:
		return 0.0778
	case German:
		return 0.0762
	case Italian:
		return 0.0738
	case Russian:
		return 0.0529
	case Spanish:
		return 0.0770
	}
	return 0.0667
}

// BestMatchLanguage returns the language whose reference index of
// coincidence lies closest to the measured index of text.
func BestMatchLanguage(text string) Language {
	ioc := IndexOfCoincidence(text)

	best := languages[0]
	bestDiff := math.Abs(best.IndexOfCoincidence() - ioc)
	for _, language := range languages[1:] {
		diff := math.Abs(language.IndexOfCoincidence() - ioc)
		if diff < bestDiff {
			best, bestDiff = language, diff
		}
	}
	return best
}
