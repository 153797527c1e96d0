package enigma

import (
	"fmt"
	"io"
	"strings"
)

// Machine is a configured Enigma machine. The zero value is not usable;
// build one with NewMachine.
//
// Encrypt and Decrypt do not mutate the machine, so a machine without a
// trace writer is safe for concurrent use.
type Machine struct {
	rotors    [3]Rotor
	positions [3]int
	wiring    [3][26]byte
	inverse   [3][26]int
	notches   [3][26]bool
	reflector [26]byte
	plugboard [26]byte

	clearPunctuation bool
	trace            io.Writer
}

// Decrypt runs text through the machine. Input is uppercased first;
// characters outside A-Z pass through unchanged unless the machine was
// built with ClearPunctuation, in which case they are dropped.
//
// Enigma is symmetric: Decrypt and Encrypt are the same transformation,
// so decrypting a decryption returns the original text.
func (m *Machine) Decrypt(text string) string {
	return m.decryptFrom(text, m.positions[0], m.positions[1], m.positions[2])
}

// DecryptAt is Decrypt starting from the given rotor positions, numbered
// 1 through 26, instead of the configured ones. Settings searches sweep
// the position space through it without rebuilding the machine.
func (m *Machine) DecryptAt(text string, first, second, third int) (string, error) {
	for _, n := range [3]int{first, second, third} {
		if n < 1 || n > 26 {
			return "", fmt.Errorf("rotor position out of range: %d", n)
		}
	}
	return m.decryptFrom(text, first-1, second-1, third-1), nil
}

func (m *Machine) decryptFrom(text string, a, b, c int) string {
	var out strings.Builder
	out.Grow(len(text))

	for _, r := range strings.ToUpper(text) {
		if m.trace != nil {
			fmt.Fprintf(m.trace, "Decrypting character: '%c'\n", r)
		}

		if r < 'A' || r > 'Z' {
			if m.clearPunctuation {
				continue
			}
			if m.trace != nil {
				fmt.Fprintf(m.trace, "\tCharacter is punctuation; Leaving it as-is.\n")
			}
			out.WriteRune(r)
			continue
		}

		a, b, c = m.step(a, b, c)

		if m.trace != nil {
			out.WriteByte(m.encipherTraced(byte(r), a, b, c))
		} else {
			out.WriteByte(m.encipher(byte(r), a, b, c))
		}
	}

	return out.String()
}

// Encrypt runs text through the machine. It is identical to Decrypt;
// the two names only signal intent.
func (m *Machine) Encrypt(text string) string {
	return m.Decrypt(text)
}

// step advances the rotor positions for one keypress. The right rotor
// always steps. Leaving a notch carries the step leftward, and a middle
// rotor sitting on its own notch steps itself and the left rotor even
// without a carry, which is the double step anomaly of the real
// machine's pawl mechanism.
func (m *Machine) step(a, b, c int) (int, int, int) {
	trigger := m.notches[2][c]
	c = (c + 1) % 26

	if trigger {
		trigger = m.notches[1][b]
		b = (b + 1) % 26
		if trigger {
			a = (a + 1) % 26
		}
	} else if m.notches[1][b] {
		b = (b + 1) % 26
		a = (a + 1) % 26
	}

	return a, b, c
}

// encipher passes one letter through the full scrambler path: plugboard,
// rotors right to left, reflector, rotors left to right, plugboard.
func (m *Machine) encipher(letter byte, a, b, c int) byte {
	letter = m.plugboard[letter-'A']

	letter = m.forward(2, letter, c)
	letter = m.forward(1, letter, b)
	letter = m.forward(0, letter, a)

	letter = m.reflector[letter-'A']

	letter = m.backward(0, letter, a)
	letter = m.backward(1, letter, b)
	letter = m.backward(2, letter, c)

	return m.plugboard[letter-'A']
}

// encipherTraced is encipher with a narration of every stage written to
// the trace writer.
func (m *Machine) encipherTraced(letter byte, a, b, c int) byte {
	old := letter
	letter = m.plugboard[letter-'A']
	fmt.Fprintf(m.trace, "\tPassing character through plugboard: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.forward(2, letter, c)
	fmt.Fprintf(m.trace, "\tPassing character through third rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.forward(1, letter, b)
	fmt.Fprintf(m.trace, "\tPassing character through second rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.forward(0, letter, a)
	fmt.Fprintf(m.trace, "\tPassing character through first rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.reflector[letter-'A']
	fmt.Fprintf(m.trace, "\tPassing character through reflector: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.backward(0, letter, a)
	fmt.Fprintf(m.trace, "\tPassing character back through first rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.backward(1, letter, b)
	fmt.Fprintf(m.trace, "\tPassing character back through second rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.backward(2, letter, c)
	fmt.Fprintf(m.trace, "\tPassing character back through third rotor: '%c' -> '%c'\n", old, letter)

	old = letter
	letter = m.plugboard[letter-'A']
	fmt.Fprintf(m.trace, "\tPassing character back through plugboard: '%c' -> '%c'\n", old, letter)
	fmt.Fprintf(m.trace, "\tFinalized character: '%c'\n", letter)

	return letter
}

// forward passes a letter through the rotor in the given slot toward
// the reflector, accounting for the rotor's current offset.
func (m *Machine) forward(slot int, letter byte, offset int) byte {
	pos := int(letter - 'A')
	mapped := m.wiring[slot][(pos+offset)%26]
	return byte('A' + (int(mapped-'A')+26-offset)%26)
}

// backward passes a letter through the rotor in the given slot away
// from the reflector, using the inverse wiring.
func (m *Machine) backward(slot int, letter byte, offset int) byte {
	pos := m.inverse[slot][(int(letter-'A')+offset)%26]
	return byte('A' + (pos+26-offset)%26)
}

// conjugate applies a ring setting to a rotor wiring: each contact's
// letter shifts forward by the setting and the whole wiring rotates by
// the same amount, which is what physically turning the ring does.
func conjugate(wiring string, setting int) [26]byte {
	var out [26]byte
	for i := 0; i < 26; i++ {
		letter := wiring[(i-setting+26)%26]
		out[i] = byte('A' + (int(letter-'A')+setting)%26)
	}
	return out
}

func identityBoard() [26]byte {
	var board [26]byte
	for i := range board {
		board[i] = byte('A' + i)
	}
	return board
}
