package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Rank orders candidates best first. Scores within floating-point noise
// of each other fall back to detection time, then ID, so repeated runs
// over the same data produce identical output.
func Rank(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if almostEqual(ranked[i].Score, ranked[j].Score) {
			ti := ranked[i].DetectedAt.Time()
			tj := ranked[j].DetectedAt.Time()
			if !ti.Equal(tj) {
				return ti.Before(tj)
			}
			return ranked[i].ID < ranked[j].ID
		}
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// WriteJSONL persists candidates to a JSON Lines file at path,
// replacing whatever was there.
func WriteJSONL(path string, candidates []Candidate) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("output path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report output: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, candidate := range candidates {
		if err := encoder.Encode(candidate); err != nil {
			return fmt.Errorf("encode candidate: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush report output: %w", err)
	}
	return nil
}

// ReadJSONL loads and validates candidates from a JSON Lines file.
func ReadJSONL(path string) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer file.Close()

	var candidates []Candidate
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64<<10), 4<<20)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var candidate Candidate
		if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
			return nil, fmt.Errorf("line %d: decode candidate: %w", line, err)
		}
		if err := candidate.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		candidates = append(candidates, candidate)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return candidates, nil
}
