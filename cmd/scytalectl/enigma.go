package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scytale-dev/scytale/internal/enigma"
)

// parseTriple parses a comma separated rotor or ring triple, such as
// "1,2,3".
func parseTriple(value string) ([3]int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf("expected three comma separated values, got %q", value)
	}
	var triple [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return [3]int{}, fmt.Errorf("parse %q: %w", part, err)
		}
		triple[i] = n
	}
	return triple, nil
}

func runEnigma(args []string) int {
	fs := flag.NewFlagSet("enigma", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the text")
	rotors := fs.String("rotors", "1,2,3", "rotor numbers for the left, middle, right slots")
	reflector := fs.String("reflector", "B", "reflector name")
	rings := fs.String("rings", "1,1,1", "ring settings")
	positions := fs.String("positions", "1,1,1", "starting rotor positions")
	plugboard := fs.String("plugboard", "", "space separated plugboard pairs, such as \"BY EW FZ\"")
	clearPunct := fs.Bool("clear-punctuation", false, "drop characters outside A-Z instead of passing them through")
	trace := fs.Bool("trace", false, "narrate every substitution stage to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rotorTriple, err := parseTriple(*rotors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --rotors: %v\n", err)
		return 2
	}
	ringTriple, err := parseTriple(*rings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --rings: %v\n", err)
		return 2
	}
	positionTriple, err := parseTriple(*positions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --positions: %v\n", err)
		return 2
	}

	builder := enigma.NewMachine().
		Rotors(rotorTriple[0], rotorTriple[1], rotorTriple[2]).
		Reflector(*reflector).
		RingSettings(ringTriple[0], ringTriple[1], ringTriple[2]).
		RingPositions(positionTriple[0], positionTriple[1], positionTriple[2]).
		Plugboard(*plugboard)
	if *clearPunct {
		builder = builder.ClearPunctuation()
	}
	if *trace {
		builder = builder.Trace(os.Stderr)
	}

	m, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "enigma: %v\n", err)
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "enigma: %v\n", err)
		return 1
	}

	// Encrypt and Decrypt are the same operation on this machine.
	fmt.Println(m.Decrypt(text))
	return 0
}
