// Package report persists recovered-plaintext candidates as JSON Lines
// and ranks them for review. Every crack produces candidates; the report
// layer gives them stable identifiers, a schema, and a deterministic
// order so separate runs can be compared and merged.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/scytale-dev/scytale/internal/score"
)

// SchemaVersion is the candidate schema persisted to disk.
const SchemaVersion = "0.1"

// Timestamp enforces RFC3339 encoding for candidate detection times.
type Timestamp time.Time

// NewTimestamp normalises the input time before persisting it.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp(t.UTC().Truncate(time.Second))
}

// Time exposes the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether the timestamp has been initialised.
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON renders the timestamp using time.RFC3339. Zero values
// encode as an empty string so Validate can flag them explicitly.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(tt.UTC().Format(time.RFC3339))
}

// UnmarshalJSON enforces RFC3339 timestamps when reading persisted
// candidates.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid detection timestamp: %w", err)
	}
	*t = NewTimestamp(parsed)
	return nil
}

// Signals is the per-signal breakdown behind a candidate's composite
// score. WordsUsed records whether word commonality participated, since
// a zero word score is also a legitimate value.
type Signals struct {
	Coincidence  float64 `json:"coincidence"`
	Characters   float64 `json:"characters"`
	Distribution float64 `json:"distribution"`
	Bigrams      float64 `json:"bigrams"`
	Words        float64 `json:"words"`
	WordsUsed    bool    `json:"words_used"`
}

func signalsFrom(b score.Breakdown) Signals {
	return Signals{
		Coincidence:  b.Coincidence,
		Characters:   b.Characters,
		Distribution: b.Distribution,
		Bigrams:      b.Bigrams,
		Words:        b.Words,
		WordsUsed:    b.HasWords,
	}
}

// Candidate is one recovered plaintext with the settings that produced
// it and the evidence for believing it.
type Candidate struct {
	Version    string    `json:"version"`
	ID         string    `json:"id"`
	Session    string    `json:"session"`
	Family     string    `json:"family"`
	Key        string    `json:"key,omitempty"`
	Ciphertext string    `json:"ciphertext,omitempty"`
	Plaintext  string    `json:"plaintext"`
	Score      float64   `json:"score"`
	Signals    Signals   `json:"signals"`
	DetectedAt Timestamp `json:"ts"`
}

// NewID generates a ULID suitable for a candidate identifier.
func NewID() string {
	return ulid.Make().String()
}

// NewSession generates an identifier shared by every candidate of one
// crack run.
func NewSession() string {
	return uuid.New().String()
}

// NewCandidate scores plaintext and wraps it as a fully populated
// candidate for the given session.
func NewCandidate(session, family, key, plaintext string) Candidate {
	p := score.NewPossiblePlaintext(plaintext)
	return Candidate{
		Version:    SchemaVersion,
		ID:         NewID(),
		Session:    session,
		Family:     family,
		Key:        key,
		Plaintext:  plaintext,
		Score:      p.Score(),
		Signals:    signalsFrom(p.Breakdown()),
		DetectedAt: NewTimestamp(time.Now()),
	}
}

// Validate checks the candidate against the persisted schema contract.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("version is required")
	}
	if strings.TrimSpace(c.Version) != SchemaVersion {
		return fmt.Errorf("unsupported version %q", c.Version)
	}
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("candidate id is required")
	}
	if _, err := ulid.ParseStrict(strings.TrimSpace(c.ID)); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	if strings.TrimSpace(c.Session) == "" {
		return errors.New("session is required")
	}
	if _, err := uuid.Parse(strings.TrimSpace(c.Session)); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}
	if strings.TrimSpace(c.Family) == "" {
		return errors.New("cipher family is required")
	}
	if c.Plaintext == "" {
		return errors.New("plaintext is required")
	}
	if c.Score < 0 || c.Score > 1 {
		return fmt.Errorf("score %v outside [0, 1]", c.Score)
	}
	if c.DetectedAt.IsZero() {
		return errors.New("detection timestamp is required")
	}
	return nil
}
