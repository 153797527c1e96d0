package enigma

import (
	"fmt"
	"strings"
)

// Reflector identifies one of the supported reflector (Umkehrwalze)
// wirings: the Wehrmacht A, B, and C, the M4 thin B and C, and the
// UKW-R and UKW-K from the Railway and Swiss K machines.
type Reflector int

const (
	ReflectorA Reflector = iota + 1
	ReflectorB
	ReflectorC
	ReflectorBThin
	ReflectorCThin
	ReflectorUKWR
	ReflectorUKWK
)

// ReflectorFromName resolves a reflector by its common name,
// case-insensitively: A, B, C, BThin, CThin, UKWR, or UKWK.
func ReflectorFromName(name string) (Reflector, error) {
	switch strings.ToLower(name) {
	case "a":
		return ReflectorA, nil
	case "b":
		return ReflectorB, nil
	case "c":
		return ReflectorC, nil
	case "bthin":
		return ReflectorBThin, nil
	case "cthin":
		return ReflectorCThin, nil
	case "ukwr":
		return ReflectorUKWR, nil
	case "ukwk":
		return ReflectorUKWK, nil
	}
	return 0, fmt.Errorf("%w: invalid reflector: %s", ErrInvalidConfiguration, name)
}

// String returns the reflector's common name.
func (r Reflector) String() string {
	switch r {
	case ReflectorA:
		return "A"
	case ReflectorB:
		return "B"
	case ReflectorC:
		return "C"
	case ReflectorBThin:
		return "BThin"
	case ReflectorCThin:
		return "CThin"
	case ReflectorUKWR:
		return "UKWR"
	case ReflectorUKWK:
		return "UKWK"
	}
	return fmt.Sprintf("Reflector(%d)", int(r))
}

// Wiring returns the reflector's substitution alphabet in the same
// shape as a rotor wiring. Every historical reflector is an involution,
// so the wiring pairs letters symmetrically.
func (r Reflector) Wiring() string {
	switch r {
	case ReflectorA:
		return "EJMZALYXVBWFCRQUONTSPIKHGD"
	case ReflectorB:
		return "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	case ReflectorC:
		return "FVPJIAOYEDRZXWGCTKUQSBNMHL"
	case ReflectorBThin:
		return "ENKQAUYWJICOPBLMDXZVFTHRGS"
	case ReflectorCThin:
		return "RDOBJNTKVEHMLFCWZAXGYIPSUQ"
	case ReflectorUKWR:
		return "QYHOGNECVPUZTFDJAXWMKISRBL"
	case ReflectorUKWK:
		return "IMETCGFRAYSQBZXWLHKDVUPOJN"
	}
	panic(fmt.Sprintf("invalid reflector: %d", int(r)))
}

// table returns the reflector as a by-position lookup: the wiring
// letter at position i maps back to 'A'+i.
func (r Reflector) table() [26]byte {
	var table [26]byte
	for i, letter := range []byte(r.Wiring()) {
		table[letter-'A'] = byte('A' + i)
	}
	return table
}
