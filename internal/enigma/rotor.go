// Package enigma simulates the Wehrmacht Enigma I and M-series machines:
// eight numbered rotors, seven reflectors, a plugboard, and the stepping
// mechanism including the double step anomaly.
package enigma

import "fmt"

// Rotor identifies one of the eight historical rotor wirings. Rotors are
// numbered 1 through 8, matching the Roman numerals I-VIII stamped on
// the physical wheels.
type Rotor int

const (
	RotorI Rotor = iota + 1
	RotorII
	RotorIII
	RotorIV
	RotorV
	RotorVI
	RotorVII
	RotorVIII
)

// RotorFromNumber validates a rotor number in [1, 8].
func RotorFromNumber(n int) (Rotor, error) {
	if n < 1 || n > 8 {
		return 0, fmt.Errorf("%w: rotor number out of range: %d", ErrInvalidConfiguration, n)
	}
	return Rotor(n), nil
}

// Wiring returns the rotor's substitution alphabet: position i maps the
// plain letter 'A'+i to Wiring()[i].
func (r Rotor) Wiring() string {
	switch r {
	case RotorI:
		return "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	case RotorII:
		return "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	case RotorIII:
		return "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	case RotorIV:
		return "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	case RotorV:
		return "VZBRGITYUPSDNHLXAWMJQOFECK"
	case RotorVI:
		return "JPGVOUMFYQBENHZRDKASXLICTW"
	case RotorVII:
		return "NZJHGRCXMYSWBOUFAIVLPEKQDT"
	case RotorVIII:
		return "FKQHTLXOCBJSPDZRAMEWNIUYGV"
	}
	panic(fmt.Sprintf("rotor number out of range: %d", int(r)))
}

// Notches returns the turnover letters for the rotor. When the rotor
// steps away from a notch letter, the rotor to its left steps too. The
// five original rotors have one notch each; rotors VI-VIII have two.
func (r Rotor) Notches() []byte {
	switch r {
	case RotorI:
		return []byte{'Q'}
	case RotorII:
		return []byte{'E'}
	case RotorIII:
		return []byte{'V'}
	case RotorIV:
		return []byte{'J'}
	case RotorV:
		return []byte{'Z'}
	case RotorVI, RotorVII, RotorVIII:
		return []byte{'M', 'Z'}
	}
	panic(fmt.Sprintf("rotor number out of range: %d", int(r)))
}

// notchTable returns the rotor's notches as a position lookup.
func (r Rotor) notchTable() [26]bool {
	var table [26]bool
	for _, notch := range r.Notches() {
		table[notch-'A'] = true
	}
	return table
}
