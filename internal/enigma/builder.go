package enigma

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidConfiguration reports a machine configuration that cannot
// exist: an unknown rotor or reflector, an out-of-range ring value, or
// a malformed plugboard. Every Builder failure wraps it.
var ErrInvalidConfiguration = errors.New("invalid machine configuration")

// Builder assembles a Machine step by step. Every setter validates its
// input and records the first error it sees; Build reports that error
// and later setters become no-ops once one has failed.
//
// The defaults are rotors I, I, I, reflector A, ring settings and
// positions all 1, and an empty plugboard.
type Builder struct {
	rotors    [3]Rotor
	settings  [3]int
	positions [3]int
	reflector Reflector
	plugboard [26]byte

	clearPunctuation bool
	trace            io.Writer
	unchecked        bool
	err              error
}

// NewMachine starts building a machine with the default configuration.
func NewMachine() *Builder {
	return &Builder{
		rotors:    [3]Rotor{RotorI, RotorI, RotorI},
		reflector: ReflectorA,
		plugboard: identityBoard(),
	}
}

// NewMachineUnchecked starts building a machine that trusts its
// configuration: setters store their inputs without validation and
// Build never returns an error. An out-of-range rotor or ring value
// corrupts the substitution tables or panics during precomputation
// rather than failing cleanly. For a valid configuration the machine is
// identical to a checked one. Meant for hot loops whose inputs are
// valid by construction, such as a settings search iterating over the
// legal ranges.
func NewMachineUnchecked() *Builder {
	b := NewMachine()
	b.unchecked = true
	return b
}

// Rotors selects the rotors in the left, middle, right slots by their
// historical numbers 1 through 8.
func (b *Builder) Rotors(first, second, third int) *Builder {
	if b.err != nil {
		return b
	}
	if b.unchecked {
		b.rotors = [3]Rotor{Rotor(first), Rotor(second), Rotor(third)}
		return b
	}
	for i, n := range [3]int{first, second, third} {
		rotor, err := RotorFromNumber(n)
		if err != nil {
			b.err = fmt.Errorf("building enigma machine: %w", err)
			return b
		}
		b.rotors[i] = rotor
	}
	return b
}

// Reflector selects the reflector by name, such as "B" or "UKW-R". The
// name is matched case-insensitively.
func (b *Builder) Reflector(name string) *Builder {
	if b.err != nil {
		return b
	}
	reflector, err := ReflectorFromName(name)
	if err != nil {
		if b.unchecked {
			b.reflector = reflector
			return b
		}
		b.err = fmt.Errorf("building enigma machine: %w", err)
		return b
	}
	b.reflector = reflector
	return b
}

// RingSettings sets the ring setting of each rotor, numbered 1 through
// 26 for the left, middle, right slots.
func (b *Builder) RingSettings(first, second, third int) *Builder {
	if b.err != nil {
		return b
	}
	for i, n := range [3]int{first, second, third} {
		if !b.unchecked && (n < 1 || n > 26) {
			b.err = fmt.Errorf("building enigma machine: %w: ring setting out of range: %d", ErrInvalidConfiguration, n)
			return b
		}
		b.settings[i] = n - 1
	}
	return b
}

// RingPositions sets the starting position of each rotor, numbered 1
// through 26 for the left, middle, right slots.
func (b *Builder) RingPositions(first, second, third int) *Builder {
	if b.err != nil {
		return b
	}
	for i, n := range [3]int{first, second, third} {
		if !b.unchecked && (n < 1 || n > 26) {
			b.err = fmt.Errorf("building enigma machine: %w: rotor position out of range: %d", ErrInvalidConfiguration, n)
			return b
		}
		b.positions[i] = n - 1
	}
	return b
}

// Plugboard wires up the plugboard from a space-separated list of
// letter pairs, for example "BY EW FZ". Each pair swaps its two
// letters, case-insensitively. A letter may appear in at most one pair.
func (b *Builder) Plugboard(pairs string) *Builder {
	if b.err != nil {
		return b
	}

	board := identityBoard()
	var used [26]bool

	if b.unchecked {
		for _, pair := range strings.Fields(pairs) {
			letters := []rune(strings.ToUpper(pair))
			first, second := byte(letters[0]), byte(letters[1])
			board[first-'A'] = second
			board[second-'A'] = first
		}
		b.plugboard = board
		return b
	}

	for _, pair := range strings.Fields(pairs) {
		letters := []rune(strings.ToUpper(pair))
		if len(letters) != 2 {
			b.err = fmt.Errorf("building enigma machine: %w: plugboard pair %q must be exactly two letters", ErrInvalidConfiguration, pair)
			return b
		}
		first, second := letters[0], letters[1]
		if first < 'A' || first > 'Z' || second < 'A' || second > 'Z' {
			b.err = fmt.Errorf("building enigma machine: %w: plugboard pair %q contains a character outside A-Z", ErrInvalidConfiguration, pair)
			return b
		}
		if first == second {
			b.err = fmt.Errorf("building enigma machine: %w: plugboard pair %q connects a letter to itself", ErrInvalidConfiguration, pair)
			return b
		}
		for _, letter := range letters {
			if used[letter-'A'] {
				b.err = fmt.Errorf("building enigma machine: %w: plugboard letter %c used more than once", ErrInvalidConfiguration, letter)
				return b
			}
			used[letter-'A'] = true
		}
		board[first-'A'] = byte(second)
		board[second-'A'] = byte(first)
	}

	b.plugboard = board
	return b
}

// ClearPunctuation makes the machine drop characters outside A-Z
// instead of passing them through.
func (b *Builder) ClearPunctuation() *Builder {
	b.clearPunctuation = true
	return b
}

// Trace makes the machine narrate every substitution stage to w. Meant
// for studying the machine, not for bulk work.
func (b *Builder) Trace(w io.Writer) *Builder {
	b.trace = w
	return b
}

// Build assembles the machine, precomputing the ring-adjusted rotor
// wirings, their inverses, the notch tables, and the reflector table so
// that Decrypt does nothing but array lookups.
func (b *Builder) Build() (*Machine, error) {
	if b.err != nil {
		return nil, b.err
	}

	m := &Machine{
		rotors:           b.rotors,
		positions:        b.positions,
		reflector:        b.reflector.table(),
		plugboard:        b.plugboard,
		clearPunctuation: b.clearPunctuation,
		trace:            b.trace,
	}
	for i, rotor := range b.rotors {
		m.wiring[i] = conjugate(rotor.Wiring(), b.settings[i])
		for pos, letter := range m.wiring[i] {
			m.inverse[i][letter-'A'] = pos
		}
		m.notches[i] = rotor.notchTable()
	}
	return m, nil
}

// Must unwraps a Build result for configurations known to be valid,
// panicking on error. Use it for fixed setups the way template.Must is
// used for fixed templates.
func Must(m *Machine, err error) *Machine {
	if err != nil {
		panic(err)
	}
	return m
}
