package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	code := fn()
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close reader: %v", err)
	}
	return string(data), code
}

func TestRunEncodeBase64(t *testing.T) {
	output, code := captureStdout(t, func() int {
		return runEncode([]string{"base64", "HELLO"})
	})
	if code != 0 {
		t.Fatalf("runEncode exit code = %d", code)
	}
	if got := strings.TrimSuffix(output, "\n"); got != "SEVMTE8=" {
		t.Fatalf("expected %q, got %q", "SEVMTE8=", got)
	}
}

func TestRunDecodeBase64(t *testing.T) {
	output, code := captureStdout(t, func() int {
		return runDecode([]string{"base64", "SEVMTE8="})
	})
	if code != 0 {
		t.Fatalf("runDecode exit code = %d", code)
	}
	if got := strings.TrimSuffix(output, "\n"); got != "HELLO" {
		t.Fatalf("expected %q, got %q", "HELLO", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		family string
		flags  []string
		text   string
	}{
		{family: "base64", text: "HELLO WORLD"},
		{family: "hex", text: "HELLO WORLD"},
		{family: "octal", text: "HELLO WORLD"},
		{family: "binary", text: "HI"},
		{family: "morse", text: "SOS MAYDAY"},
		{family: "caesar", flags: []string{"--shift", "7"}, text: "HELLOWORLD"},
		{family: "vigenere", flags: []string{"--key", "LEMON"}, text: "ATTACKATDAWN"},
		{family: "gronsfeld", flags: []string{"--key", "31415"}, text: "MEETMEATMIDNIGHT"},
		{family: "running_key", flags: []string{"--key", "HOWDOESTHECLOCKWORK"}, text: "MEETMEATMIDNIGHT"},
		{family: "columnar", flags: []string{"--key", "ZEBRA"}, text: "WEAREDISCOVERED"},
	}

	for _, tc := range cases {
		t.Run(tc.family, func(t *testing.T) {
			encodeArgs := append(append([]string{}, tc.flags...), tc.family, tc.text)
			encoded, code := captureStdout(t, func() int { return runEncode(encodeArgs) })
			if code != 0 {
				t.Fatalf("encode exit code = %d", code)
			}

			decodeArgs := append(append([]string{}, tc.flags...), tc.family, strings.TrimSuffix(encoded, "\n"))
			decoded, code := captureStdout(t, func() int { return runDecode(decodeArgs) })
			if code != 0 {
				t.Fatalf("decode exit code = %d", code)
			}
			if got := strings.TrimSuffix(decoded, "\n"); got != tc.text {
				t.Fatalf("expected %q, got %q", tc.text, got)
			}
		})
	}
}

func TestRunEncodeUnknownFamily(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runEncode([]string{"rot26", "HELLO"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestRunEncodeRequiresFamily(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runEncode(nil); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestRunEncodeList(t *testing.T) {
	output, code := captureStdout(t, func() int {
		return runEncode([]string{"--list"})
	})
	if code != 0 {
		t.Fatalf("runEncode exit code = %d", code)
	}
	for _, name := range []string{"base64_encode", "morse_decode", "vigenere_encrypt", "columnar_decrypt"} {
		if !strings.Contains(output, name) {
			t.Fatalf("expected listing to mention %s:\n%s", name, output)
		}
	}
}

func TestRunDecodeMissingKey(t *testing.T) {
	restore := silenceOutput(t)
	defer restore()

	if code := runDecode([]string{"vigenere", "LXFOPVEFRNHR"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
