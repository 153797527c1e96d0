package enigma

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr string
	}{
		{
			name:    "rotor number too low",
			builder: NewMachine().Rotors(0, 1, 2),
			wantErr: "rotor number out of range: 0",
		},
		{
			name:    "rotor number too high",
			builder: NewMachine().Rotors(1, 2, 9),
			wantErr: "rotor number out of range: 9",
		},
		{
			name:    "unknown reflector",
			builder: NewMachine().Reflector("Q"),
			wantErr: "invalid reflector: Q",
		},
		{
			name:    "ring setting too low",
			builder: NewMachine().RingSettings(0, 1, 1),
			wantErr: "ring setting out of range: 0",
		},
		{
			name:    "ring setting too high",
			builder: NewMachine().RingSettings(1, 27, 1),
			wantErr: "ring setting out of range: 27",
		},
		{
			name:    "rotor position too low",
			builder: NewMachine().RingPositions(1, 0, 1),
			wantErr: "rotor position out of range: 0",
		},
		{
			name:    "rotor position too high",
			builder: NewMachine().RingPositions(1, 1, 30),
			wantErr: "rotor position out of range: 30",
		},
		{
			name:    "plugboard pair too long",
			builder: NewMachine().Plugboard("ABC"),
			wantErr: `plugboard pair "ABC" must be exactly two letters`,
		},
		{
			name:    "plugboard pair too short",
			builder: NewMachine().Plugboard("AB C"),
			wantErr: `plugboard pair "C" must be exactly two letters`,
		},
		{
			name:    "plugboard pair with digit",
			builder: NewMachine().Plugboard("A1"),
			wantErr: `plugboard pair "A1" contains a character outside A-Z`,
		},
		{
			name:    "plugboard self pair",
			builder: NewMachine().Plugboard("AA"),
			wantErr: `plugboard pair "AA" connects a letter to itself`,
		},
		{
			name:    "plugboard letter reused",
			builder: NewMachine().Plugboard("AB CA"),
			wantErr: "plugboard letter A used more than once",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
			if !strings.HasPrefix(err.Error(), "building enigma machine: ") {
				t.Errorf("expected building prefix, got %q", err)
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %q", err)
			}
		})
	}
}

func TestBuilderReportsFirstError(t *testing.T) {
	_, err := NewMachine().
		Rotors(9, 1, 1).
		Reflector("nope").
		RingSettings(0, 0, 0).
		Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "rotor number out of range: 9") {
		t.Errorf("expected the rotor error to win, got %q", err)
	}
}

func TestBuilderDefaults(t *testing.T) {
	m, err := NewMachine().Build()
	if err != nil {
		t.Fatalf("expected defaults to build, got %v", err)
	}

	if m.rotors != [3]Rotor{RotorI, RotorI, RotorI} {
		t.Errorf("expected rotors I, I, I, got %v", m.rotors)
	}
	if m.positions != [3]int{0, 0, 0} {
		t.Errorf("expected starting positions A, A, A, got %v", m.positions)
	}
	if m.plugboard != identityBoard() {
		t.Errorf("expected an empty plugboard, got %v", m.plugboard)
	}
}

func TestBuilderBoundarySettings(t *testing.T) {
	m, err := NewMachine().
		RingSettings(1, 26, 13).
		RingPositions(26, 1, 26).
		Build()
	if err != nil {
		t.Fatalf("expected boundary values to build, got %v", err)
	}
	if m.positions != [3]int{25, 0, 25} {
		t.Errorf("expected stored positions [25 0 25], got %v", m.positions)
	}
}

func TestPlugboardSwapsBothDirections(t *testing.T) {
	m, err := NewMachine().Plugboard("bY ew").Build()
	if err != nil {
		t.Fatalf("building machine: %v", err)
	}

	pairs := map[byte]byte{'B': 'Y', 'Y': 'B', 'E': 'W', 'W': 'E', 'A': 'A', 'Z': 'Z'}
	for in, want := range pairs {
		if got := m.plugboard[in-'A']; got != want {
			t.Errorf("plugboard[%c]: expected %c, got %c", in, want, got)
		}
	}
}

func TestRingSettingConjugatesWiring(t *testing.T) {
	plain := Must(NewMachine().Rotors(1, 2, 3).Build())
	offset := Must(NewMachine().Rotors(1, 2, 3).RingSettings(2, 1, 1).Build())

	if plain.wiring[0] == offset.wiring[0] {
		t.Error("expected ring setting 2 to change the left rotor wiring")
	}
	if plain.wiring[1] != offset.wiring[1] || plain.wiring[2] != offset.wiring[2] {
		t.Error("expected untouched slots to keep the plain wiring")
	}

	// Setting 2 rotates rotor I so contact 0 reads the last contact,
	// shifted forward one letter: wiring "...RCJ" puts J+1 = K first.
	if offset.wiring[0][0] != 'K' {
		t.Errorf("expected conjugated contact 0 to be K, got %c", offset.wiring[0][0])
	}
}

func TestInverseWiringInvertsForward(t *testing.T) {
	m := topSecretMachine(t)

	for slot := 0; slot < 3; slot++ {
		for i := 0; i < 26; i++ {
			letter := m.wiring[slot][i]
			if got := m.inverse[slot][letter-'A']; got != i {
				t.Errorf("slot %d: inverse[%c] = %d, expected %d", slot, letter, got, i)
			}
		}
	}
}

func TestMustReturnsMachine(t *testing.T) {
	m := Must(NewMachine().Rotors(3, 2, 1).Build())
	if m == nil {
		t.Fatal("expected a machine, got nil")
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Must(NewMachine().Rotors(0, 0, 0).Build())
}

func TestUncheckedMatchesChecked(t *testing.T) {
	checked, err := NewMachine().
		Rotors(1, 2, 3).
		Reflector("B").
		RingSettings(10, 12, 14).
		RingPositions(5, 22, 3).
		Plugboard("BY EW FZ GI QM RV UX").
		Build()
	if err != nil {
		t.Fatalf("building checked machine: %v", err)
	}
	unchecked, err := NewMachineUnchecked().
		Rotors(1, 2, 3).
		Reflector("B").
		RingSettings(10, 12, 14).
		RingPositions(5, 22, 3).
		Plugboard("BY EW FZ GI QM RV UX").
		Build()
	if err != nil {
		t.Fatalf("building unchecked machine: %v", err)
	}

	ciphertext := "KDZVKMNTYQJPHFXI"
	if got, want := unchecked.Decrypt(ciphertext), checked.Decrypt(ciphertext); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := unchecked.Encrypt("TOPSECRETMESSAGE"), checked.Encrypt("TOPSECRETMESSAGE"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUncheckedSkipsValidation(t *testing.T) {
	m, err := NewMachineUnchecked().
		RingSettings(27, 1, 13).
		RingPositions(30, 1, 26).
		Plugboard("AA").
		Build()
	if err != nil {
		t.Fatalf("expected the unchecked builder to accept anything, got %v", err)
	}
	if m == nil {
		t.Fatal("expected a machine, got nil")
	}
}
