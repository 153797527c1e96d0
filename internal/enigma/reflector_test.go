package enigma

import (
	"strings"
	"testing"
)

func TestReflectorFromName(t *testing.T) {
	tests := []struct {
		name string
		want Reflector
	}{
		{"A", ReflectorA},
		{"b", ReflectorB},
		{"C", ReflectorC},
		{"BThin", ReflectorBThin},
		{"cthin", ReflectorCThin},
		{"UKWR", ReflectorUKWR},
		{"ukwk", ReflectorUKWK},
	}
	for _, tt := range tests {
		got, err := ReflectorFromName(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	_, err := ReflectorFromName("D")
	if err == nil {
		t.Fatal("expected error for unknown reflector, got nil")
	}
	if !strings.Contains(err.Error(), "invalid reflector: D") {
		t.Errorf("expected invalid reflector error, got %q", err)
	}
}

func TestReflectorNamesRoundTrip(t *testing.T) {
	for r := ReflectorA; r <= ReflectorUKWK; r++ {
		got, err := ReflectorFromName(r.String())
		if err != nil {
			t.Errorf("%v: unexpected error %v", r, err)
			continue
		}
		if got != r {
			t.Errorf("%v: round-tripped to %v", r, got)
		}
	}
}

func TestReflectorWiringsAreInvolutions(t *testing.T) {
	for r := ReflectorA; r <= ReflectorUKWK; r++ {
		table := r.table()
		for i := 0; i < 26; i++ {
			mapped := table[i]
			if mapped == byte('A'+i) {
				t.Errorf("%v: maps %c to itself", r, 'A'+i)
			}
			if back := table[mapped-'A']; back != byte('A'+i) {
				t.Errorf("%v: %c -> %c -> %c is not a pairing", r, 'A'+i, mapped, back)
			}
		}
	}
}

func TestReflectorBKnownPairs(t *testing.T) {
	table := ReflectorB.table()

	pairs := map[byte]byte{'A': 'Y', 'Y': 'A', 'B': 'R', 'S': 'F'}
	for in, want := range pairs {
		if got := table[in-'A']; got != want {
			t.Errorf("reflector B: expected %c -> %c, got %c", in, want, got)
		}
	}
}
