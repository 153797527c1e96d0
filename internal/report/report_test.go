package report

import (
	"strings"
	"testing"
	"time"
)

func validCandidate() Candidate {
	return Candidate{
		Version:    SchemaVersion,
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Session:    "123e4567-e89b-12d3-a456-426614174000",
		Family:     "gronsfeld",
		Key:        "314",
		Plaintext:  "the men who work the land",
		Score:      0.93,
		DetectedAt: NewTimestamp(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)),
	}
}

func TestCandidateValidate(t *testing.T) {
	if err := validCandidate().Validate(); err != nil {
		t.Fatalf("valid candidate rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Candidate)
		wantErr string
	}{
		{"missing version", func(c *Candidate) { c.Version = "" }, "version is required"},
		{"unknown version", func(c *Candidate) { c.Version = "9.9" }, "unsupported version"},
		{"missing id", func(c *Candidate) { c.ID = "" }, "id is required"},
		{"malformed id", func(c *Candidate) { c.ID = "not-a-ulid" }, "invalid id"},
		{"missing session", func(c *Candidate) { c.Session = "" }, "session is required"},
		{"malformed session", func(c *Candidate) { c.Session = "abc" }, "invalid session"},
		{"missing family", func(c *Candidate) { c.Family = "" }, "family is required"},
		{"missing plaintext", func(c *Candidate) { c.Plaintext = "" }, "plaintext is required"},
		{"score above one", func(c *Candidate) { c.Score = 1.5 }, "outside [0, 1]"},
		{"negative score", func(c *Candidate) { c.Score = -0.1 }, "outside [0, 1]"},
		{"missing timestamp", func(c *Candidate) { c.DetectedAt = Timestamp{} }, "timestamp is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			tt.mutate(&candidate)
			err := candidate.Validate()
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestNewCandidatePopulatesSchema(t *testing.T) {
	session := NewSession()
	candidate := NewCandidate(session, "gronsfeld", "314", "the men who work the land in the high country")

	if err := candidate.Validate(); err != nil {
		t.Fatalf("generated candidate invalid: %v", err)
	}
	if candidate.Session != session {
		t.Errorf("session: expected %q, got %q", session, candidate.Session)
	}
	if candidate.Score <= 0 {
		t.Errorf("expected a positive score, got %v", candidate.Score)
	}
	if !candidate.Signals.WordsUsed {
		t.Error("expected word commonality to participate for multi-word plaintext")
	}
	if candidate.Signals.Coincidence == 0 {
		t.Error("expected a coincidence signal")
	}
}

func TestNewIDGeneratesDistinctSortableIDs(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	if len(a) != 26 || len(b) != 26 {
		t.Errorf("expected 26-character ids, got %d and %d", len(a), len(b))
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	original := NewTimestamp(time.Date(2026, 8, 25, 9, 30, 45, 999999999, time.UTC))

	encoded, err := original.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"2026-08-25T09:30:45Z"` {
		t.Errorf("expected truncated RFC3339, got %s", encoded)
	}

	var decoded Timestamp
	if err := decoded.UnmarshalJSON(encoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Time().Equal(original.Time()) {
		t.Errorf("expected %v, got %v", original.Time(), decoded.Time())
	}
}

func TestTimestampRejectsMalformedInput(t *testing.T) {
	var ts Timestamp
	if err := ts.UnmarshalJSON([]byte(`"yesterday"`)); err == nil {
		t.Fatal("expected an error, got nil")
	}
}
