package main

import (
	"os"
	"testing"
)

func silenceOutput(t *testing.T) func() {
	t.Helper()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open dev null: %v", err)
	}
	stdout := os.Stdout
	stderr := os.Stderr
	os.Stdout = devNull
	os.Stderr = devNull
	return func() {
		os.Stdout = stdout
		os.Stderr = stderr
		if err := devNull.Close(); err != nil {
			t.Fatalf("close dev null: %v", err)
		}
	}
}

func TestRunVersion(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runVersion(nil); code != 0 {
		t.Fatalf("expected version command to exit 0, got %d", code)
	}
}

func TestRunVersionRejectsArguments(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runVersion([]string{"extra"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestVersionFlag(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	*showVersion = true
	t.Cleanup(func() { *showVersion = false })

	if handled := maybePrintVersion(); !handled {
		t.Fatalf("expected maybePrintVersion to handle --version flag")
	}
}

func TestVersionFlagUnsetIsIgnored(t *testing.T) {
	if handled := maybePrintVersion(); handled {
		t.Fatalf("expected maybePrintVersion to pass when the flag is unset")
	}
}

func TestRunRecipeRequiresSubcommand(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runRecipe(nil); code != 2 {
		t.Fatalf("expected exit code 2 for missing subcommand, got %d", code)
	}
	if code := runRecipe([]string{"bogus"}); code != 2 {
		t.Fatalf("expected exit code 2 for unknown subcommand, got %d", code)
	}
}
