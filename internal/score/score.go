// Package score rates candidate plaintexts by how much they look like
// English. Brute-force searches produce piles of candidate decryptions;
// the composite score here gives them a total order so the searches can
// keep the likely plaintexts and discard the rest.
package score

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/scytale-dev/scytale/internal/dictionary"
	"github.com/scytale-dev/scytale/internal/textstat"
)

// ErrInvalidArgument reports a request the scorer cannot satisfy, such
// as asking for more best candidates than were supplied.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// englishIndexOfCoincidence is the reference index for English prose.
	englishIndexOfCoincidence = 0.0667

	// maxIndexGap is the largest possible distance from the English
	// reference, reached by text whose letters are all identical.
	maxIndexGap = 0.9333
)

// PossiblePlaintext is a candidate decryption under analysis.
type PossiblePlaintext struct {
	text string
}

// NewPossiblePlaintext wraps text as a scoring candidate.
func NewPossiblePlaintext(text string) PossiblePlaintext {
	return PossiblePlaintext{text: text}
}

// Text returns the candidate text.
func (p PossiblePlaintext) Text() string {
	return p.text
}

// Breakdown carries the individual signals behind a composite score.
// HasWords reports whether word commonality participated; it only does
// when the candidate contains a space.
type Breakdown struct {
	Coincidence  float64
	Characters   float64
	Distribution float64
	Bigrams      float64
	Words        float64
	HasWords     bool
}

// Breakdown computes each scoring signal separately, for callers that
// report or log more than the composite.
func (p PossiblePlaintext) Breakdown() Breakdown {
	b := Breakdown{
		Coincidence:  1 - math.Abs(textstat.IndexOfCoincidence(p.text)-englishIndexOfCoincidence)/maxIndexGap,
		Characters:   textstat.CharacterScore(p.text),
		Distribution: textstat.DistributionScore(p.text),
		Bigrams:      textstat.BigramDistributionScore(p.text),
	}
	if strings.Contains(p.text, " ") {
		b.Words = dictionary.AverageCommonalityScore(p.text)
		b.HasWords = true
	}
	return b
}

// Score rates the candidate in [0, 1]; higher means more English-like.
// The score averages index-of-coincidence proximity, per-character
// frequency fit, frequency distribution shape, and bigram distribution
// shape. Candidates containing a space also average in word
// commonality, since single tokens give the dictionary nothing to work
// with.
func (p PossiblePlaintext) Score() float64 {
	b := p.Breakdown()

	scores := []float64{b.Coincidence, b.Characters, b.Distribution, b.Bigrams}
	if b.HasWords {
		scores = append(scores, b.Words)
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Best returns the highest-scoring candidate. ok is false when
// candidates is empty.
func Best(candidates []string) (best string, ok bool) {
	if len(candidates) == 0 {
		return "", false
	}

	best = candidates[0]
	bestScore := NewPossiblePlaintext(best).Score()
	for _, candidate := range candidates[1:] {
		if s := NewPossiblePlaintext(candidate).Score(); s > bestScore {
			best, bestScore = candidate, s
		}
	}
	return best, true
}

// BestN returns the n highest-scoring candidates ordered best first.
// Candidates with equal scores keep their input order. It fails with
// ErrInvalidArgument when n is 0, when candidates is empty, or when n
// exceeds the candidate count.
func BestN(candidates []string, n int) ([]string, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot take the best 0 of %d candidates", ErrInvalidArgument, len(candidates))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: cannot take the best %d candidates of an empty list", ErrInvalidArgument, n)
	}
	if n > len(candidates) {
		return nil, fmt.Errorf("%w: cannot take the best %d of %d candidates", ErrInvalidArgument, n, len(candidates))
	}

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, candidate := range candidates {
		ranked[i] = scored{text: candidate, score: NewPossiblePlaintext(candidate).Score()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := make([]string, n)
	for i := 0; i < n; i++ {
		best[i] = ranked[i].text
	}
	return best, nil
}
