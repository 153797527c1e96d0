package classify

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/scytale-dev/scytale/internal/alphabet"
	"github.com/scytale-dev/scytale/internal/textstat"
)

// DetectionResult reports one cipher family a ciphertext may belong to.
type DetectionResult struct {
	Family     CipherType `json:"family"`
	Confidence float64    `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
	Operation  string     `json:"operation"`
}

// Detector scores a ciphertext against every known cipher family,
// reporting all plausible matches rather than the single best one.
// BestMatch stays authoritative for layered decryption; the detector
// feeds the CLI surface where a ranked list with reasoning is more
// useful than a bare verdict.
type Detector struct{}

// NewDetector creates a new detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect identifies the cipher families input may belong to, sorted by
// confidence. Results below 0.3 confidence are dropped.
func (d *Detector) Detect(ctx context.Context, input []byte) ([]DetectionResult, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	text := string(input)

	results := []DetectionResult{}
	results = append(results, d.detectMorse(text)...)
	results = append(results, d.detectOctal(text)...)
	results = append(results, d.detectHex(text)...)
	results = append(results, d.detectLetterCipher(text)...)
	results = append(results, d.detectBase64(text)...)

	sortResultsByConfidence(results)

	filtered := []DetectionResult{}
	for _, r := range results {
		if r.Confidence >= 0.3 {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

// SupportedFamilies returns the cipher families this detector can identify.
func (d *Detector) SupportedFamilies() []CipherType {
	return []CipherType{Morse, Octal, Hex, Transposition, Substitution, Base64}
}

func (d *Detector) detectMorse(text string) []DetectionResult {
	results := []DetectionResult{}

	if strings.TrimSpace(text) == "" || !alphabet.Raw(text).SubsetOf(alphabet.MorseSet) {
		return results
	}

	confidence := 0.7
	if strings.Contains(text, ".") && strings.Contains(text, "-") {
		confidence = 0.95
	}

	results = append(results, DetectionResult{
		Family:     Morse,
		Confidence: confidence,
		Reasoning:  "Contains only Morse symbols (dots, dashes, slashes, whitespace)",
		Operation:  "morse_decode",
	})
	return results
}

func (d *Detector) detectOctal(text string) []DetectionResult {
	results := []DetectionResult{}

	characters := alphabet.Of(text)
	if characters.Len() == 0 || !characters.SubsetOf(alphabet.OctalSet) {
		return results
	}

	confidence := 0.6
	if uniformGroups(text, 3) {
		confidence = 0.9
	}

	results = append(results, DetectionResult{
		Family:     Octal,
		Confidence: confidence,
		Reasoning:  "Contains only octal digits",
		Operation:  "octal_decode",
	})
	return results
}

func (d *Detector) detectHex(text string) []DetectionResult {
	results := []DetectionResult{}

	characters := alphabet.Of(text)
	if characters.Len() == 0 || !characters.SubsetOf(alphabet.HexSet) {
		return results
	}

	confidence := 0.55
	if uniformGroups(text, 3) || uniformGroups(text, 2) {
		confidence = 0.85
	}
	// Octal-only digits match hex too, so rank the broader family lower.
	if characters.SubsetOf(alphabet.OctalSet) {
		confidence -= 0.2
	}

	results = append(results, DetectionResult{
		Family:     Hex,
		Confidence: confidence,
		Reasoning:  "Contains only hexadecimal digits",
		Operation:  "hex_decode",
	})
	return results
}

func (d *Detector) detectLetterCipher(text string) []DetectionResult {
	results := []DetectionResult{}

	uppers, lowers := caseCounts(text)
	if float64(uppers) >= uppercaseNoiseRatio*float64(lowers) {
		return results
	}

	ioc := textstat.IndexOfCoincidence(text)
	if ioc >= transpositionIndexLow && ioc <= transpositionIndexHigh {
		results = append(results, DetectionResult{
			Family:     Transposition,
			Confidence: 0.8,
			Reasoning:  fmt.Sprintf("Single-case letters with index of coincidence %.4f, consistent with rearranged plaintext", ioc),
			Operation:  "columnar_decrypt",
		})
		return results
	}

	confidence := 0.6
	reasoning := fmt.Sprintf("Single-case letters with index of coincidence %.4f", ioc)
	if ioc >= 0.04 && ioc <= 0.05 {
		confidence = 0.8
		reasoning += ", consistent with polyalphabetic substitution"
	}

	results = append(results, DetectionResult{
		Family:     Substitution,
		Confidence: confidence,
		Reasoning:  reasoning,
		Operation:  "vigenere_decrypt",
	})
	return results
}

func (d *Detector) detectBase64(text string) []DetectionResult {
	results := []DetectionResult{}

	if !isBase64Like(text) {
		return results
	}

	stripped := stripWhitespace(text)
	if _, err := base64.StdEncoding.DecodeString(stripped); err == nil {
		results = append(results, DetectionResult{
			Family:     Base64,
			Confidence: 0.9,
			Reasoning:  "Matches Base64 alphabet and decodes successfully",
			Operation:  "base64_decode",
		})
		return results
	}

	if _, err := base64.RawStdEncoding.DecodeString(stripped); err == nil {
		results = append(results, DetectionResult{
			Family:     Base64,
			Confidence: 0.7,
			Reasoning:  "Matches Base64 alphabet without padding",
			Operation:  "base64_decode",
		})
	}

	return results
}

// uniformGroups reports whether every whitespace-separated group of
// text has the given width, as fixed-width codec output does.
func uniformGroups(text string, width int) bool {
	groups := strings.Fields(text)
	if len(groups) == 0 {
		return false
	}
	for _, group := range groups {
		if len(group) != width {
			return false
		}
	}
	return true
}

func stripWhitespace(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// sortResultsByConfidence sorts detection results by confidence (descending)
func sortResultsByConfidence(results []DetectionResult) {
	// Simple bubble sort (fine for small arrays)
	n := len(results)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if results[j].Confidence < results[j+1].Confidence {
				results[j], results[j+1] = results[j+1], results[j]
			}
		}
	}
}
