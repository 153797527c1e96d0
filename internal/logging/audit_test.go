package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAuditLoggerEmit(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewAuditLogger("crack", WithoutStdout(), WithWriter(buf))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	event := AuditEvent{EventType: EventCrackResult, Outcome: OutcomeSuccess}
	if err := logger.Emit(event); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if decoded.Component != "crack" {
		t.Fatalf("expected component 'crack', got %q", decoded.Component)
	}
	if decoded.EventType != EventCrackResult {
		t.Fatalf("expected event type %q, got %q", EventCrackResult, decoded.EventType)
	}
	if decoded.Outcome != OutcomeSuccess {
		t.Fatalf("expected outcome %q, got %q", OutcomeSuccess, decoded.Outcome)
	}
	if decoded.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestEmitNormalisesTimestampToUTC(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewAuditLogger("classify", WithoutStdout(), WithWriter(buf))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	local := time.Date(2026, 8, 25, 15, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	if err := logger.Emit(AuditEvent{EventType: EventClassify, Timestamp: local}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !decoded.Timestamp.Equal(local) {
		t.Fatalf("expected the same instant, got %v", decoded.Timestamp)
	}
	if decoded.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", decoded.Timestamp.Location())
	}
}

func TestEmitRedactsDecodedSecrets(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewAuditLogger("unwrap", WithoutStdout(), WithWriter(buf))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	event := AuditEvent{
		EventType: EventLayerPeeled,
		Outcome:   OutcomeInfo,
		Reason:    "layer decoded to api_key=sk81nVqpLm422TWx0",
		Metadata: map[string]any{
			"layer":   1,
			"cipher":  "base64",
			"contact": "analyst@example.com",
		},
	}
	if err := logger.Emit(event); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "sk81nVqpLm422TWx0") {
		t.Fatalf("expected the key material to be redacted, got %s", out)
	}
	if strings.Contains(out, "analyst@example.com") {
		t.Fatalf("expected the email to be redacted, got %s", out)
	}
	if !strings.Contains(out, `"cipher":"base64"`) {
		t.Fatalf("expected benign metadata to survive, got %s", out)
	}
}

func TestWithComponentSharesOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewAuditLogger("scytalectl", WithoutStdout(), WithWriter(buf))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	derived := logger.WithComponent("report")
	if err := derived.Emit(AuditEvent{EventType: EventReportWrite}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded.Component != "report" {
		t.Fatalf("expected derived component, got %q", decoded.Component)
	}

	// Closing the derived logger must not close shared writers.
	if err := derived.Close(); err != nil {
		t.Fatalf("Close derived: %v", err)
	}
	if err := logger.Emit(AuditEvent{EventType: EventClassify}); err != nil {
		t.Fatalf("Emit after derived close: %v", err)
	}
}

func TestWithFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	logger, err := NewAuditLogger("crack", WithoutStdout(), WithFile(path))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	if err := logger.Emit(AuditEvent{EventType: EventCrackStart}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := logger.Emit(AuditEvent{EventType: EventCrackResult}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	if count := strings.Count(string(data), "\n"); count != 2 {
		t.Fatalf("expected 2 events, got %d lines", count)
	}
}

func TestRequiresWriterWithoutStdout(t *testing.T) {
	if _, err := NewAuditLogger("crack", WithoutStdout()); err == nil {
		t.Fatal("expected an error with no writers configured")
	}
}
