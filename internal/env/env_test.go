package env

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	want := "/tmp/root"
	t.Setenv("SCYTALE_HOME", want)

	got, ok := Lookup("SCYTALE_HOME")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLookupPrefersCurrentKey(t *testing.T) {
	t.Setenv("SCYTALE_OUT", "/tmp/new")
	t.Setenv("SKYTALE_OUT", "/tmp/old")

	got, ok := Lookup("SCYTALE_OUT", "SKYTALE_OUT")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if got != "/tmp/new" {
		t.Fatalf("expected the current key to win, got %q", got)
	}
}

func TestLookupFallsBackToLegacyKey(t *testing.T) {
	ResetWarningsForTesting()
	var warnings []string
	restore := SetWarnLoggerForTesting(func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	defer restore()

	t.Setenv("SKYTALE_OUT", "/tmp/legacy")

	got, ok := Lookup("SCYTALE_OUT", "SKYTALE_OUT")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if got != "/tmp/legacy" {
		t.Fatalf("expected the legacy value, got %q", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one deprecation warning, got %d", len(warnings))
	}

	// Repeated lookups must not warn again.
	if _, ok := Lookup("SCYTALE_OUT", "SKYTALE_OUT"); !ok {
		t.Fatalf("expected repeat lookup to succeed")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected the warning to fire once, got %d", len(warnings))
	}
}

func TestLookupMissing(t *testing.T) {
	if val, ok := Lookup("SCYTALE_DOES_NOT_EXIST", "SKYTALE_DOES_NOT_EXIST"); ok {
		t.Fatalf("expected lookup to fail, got %q", val)
	}
}

func TestWarningNamesBothKeys(t *testing.T) {
	ResetWarningsForTesting()
	var logged string
	restore := SetWarnLoggerForTesting(func(format string, args ...any) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i], _ = a.(string)
		}
		logged = strings.Replace(format, "%s", parts[0], 1)
		logged = strings.Replace(logged, "%s", parts[1], 1)
	})
	defer restore()

	t.Setenv("SKYTALE_WORKERS", "4")
	if _, ok := Lookup("SCYTALE_WORKERS", "SKYTALE_WORKERS"); !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if !strings.Contains(logged, "SKYTALE_WORKERS") || !strings.Contains(logged, "SCYTALE_WORKERS") {
		t.Fatalf("expected the warning to name both keys, got %q", logged)
	}
}
