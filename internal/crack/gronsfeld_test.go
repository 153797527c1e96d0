package crack

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// A pastoral passage encrypted with the Gronsfeld key 314 over the
// standard alphabet. Spaces survive encryption, so the decryption's
// word commonality separates the true key from near misses.
const (
	gronsfeldPlaintext  = "the men who work the land in the high country watch the sky each day because the rain and the snow tell them when to plant and when to wait and every family in the valley knows the old songs about the river"
	gronsfeldCiphertext = "wii pfr zis zpvn ulh meqe mq ulh imji grvrwsc zbxfi xkf wnz iddl gbc efgdvwh ulh selo eqe xkf wqpa wfpo ulhn akfr wp tobrw brg xlho xr xelu eqe iyfvb gepjpb jr wii ybpofc noszt xkf soe wrokv bfrvx wii ujzhs"
)

func TestCrackWithDigitsRecoversKey(t *testing.T) {
	cracker := NewGronsfeldCracker()

	found, err := cracker.CrackWithDigits(context.Background(), gronsfeldCiphertext, "431")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}

	if found.Key != "314" {
		t.Errorf("key: expected %q, got %q", "314", found.Key)
	}
	if found.Plaintext != gronsfeldPlaintext {
		t.Errorf("plaintext: expected %q, got %q", gronsfeldPlaintext, found.Plaintext)
	}
	if found.Score < 0.9 {
		t.Errorf("score: expected at least 0.9, got %v", found.Score)
	}
}

func TestCrackWithDigitsSingleDigit(t *testing.T) {
	found, err := NewGronsfeldCracker().CrackWithDigits(context.Background(), "ibm", "1")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if found.Plaintext != "hal" {
		t.Errorf("plaintext: expected %q, got %q", "hal", found.Plaintext)
	}
}

func TestCrackWithDigitsValidation(t *testing.T) {
	tests := []struct {
		name       string
		ciphertext string
		digits     string
		wantErr    string
	}{
		{"empty ciphertext", "", "314", "empty ciphertext"},
		{"blank ciphertext", "   ", "314", "empty ciphertext"},
		{"no digits", gronsfeldCiphertext, "", "no key digits"},
		{"letters in digits", gronsfeldCiphertext, "3a1", "not numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGronsfeldCracker().CrackWithDigits(context.Background(), tt.ciphertext, tt.digits)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if got := err.Error(); !strings.Contains(got, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, got)
			}
		})
	}
}

func TestCrackFindsKeyWithoutHints(t *testing.T) {
	found, err := NewGronsfeldCracker().Crack(context.Background(), gronsfeldCiphertext)
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}

	if found.Key != "314" {
		t.Errorf("key: expected %q, got %q", "314", found.Key)
	}
	if found.Plaintext != gronsfeldPlaintext {
		t.Errorf("plaintext: expected %q, got %q", gronsfeldPlaintext, found.Plaintext)
	}
}

func TestCrackExhaustsShortKeySpace(t *testing.T) {
	cracker := NewGronsfeldCracker(WithMaxKeyDigits(1))

	_, err := cracker.Crack(context.Background(), gronsfeldCiphertext)
	if !errors.Is(err, ErrSearchExhausted) {
		t.Errorf("expected ErrSearchExhausted, got %v", err)
	}
}

func TestCrackHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGronsfeldCracker().Crack(ctx, gronsfeldCiphertext)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDigitPermutations(t *testing.T) {
	tests := []struct {
		digits   string
		expected []string
	}{
		{"7", []string{"7"}},
		{"21", []string{"12", "21"}},
		{"112", []string{"112", "121", "211"}},
		{"111", []string{"111"}},
		{"314", []string{"134", "143", "314", "341", "413", "431"}},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			got := digitPermutations(tt.digits)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
