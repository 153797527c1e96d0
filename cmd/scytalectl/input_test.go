package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadTextPositionalWins(t *testing.T) {
	got, err := readText([]string{"ATTACK", "AT", "DAWN"}, "ignored.txt")
	if err != nil {
		t.Fatalf("readText: %v", err)
	}
	if got != "ATTACK AT DAWN" {
		t.Fatalf("expected %q, got %q", "ATTACK AT DAWN", got)
	}
}

func TestReadTextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("SECRET MESSAGE\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	got, err := readText(nil, path)
	if err != nil {
		t.Fatalf("readText: %v", err)
	}
	if got != "SECRET MESSAGE" {
		t.Fatalf("expected trailing newline stripped, got %q", got)
	}
}

func TestReadTextMissingFile(t *testing.T) {
	if _, err := readText(nil, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestReadTextFromStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if _, err := w.WriteString("PIPED TEXT\n"); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close pipe: %v", err)
	}

	stdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = stdin
		r.Close()
	})

	got, err := readText(nil, "")
	if err != nil {
		t.Fatalf("readText: %v", err)
	}
	if got != "PIPED TEXT" {
		t.Fatalf("expected %q, got %q", "PIPED TEXT", got)
	}
}
