package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scytale-dev/scytale/internal/score"
)

func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the candidate plaintext")
	breakdown := fs.Bool("breakdown", false, "print the per-signal breakdown")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "score: %v\n", err)
		return 1
	}

	p := score.NewPossiblePlaintext(text)
	fmt.Printf("%.4f\n", p.Score())

	if *breakdown {
		b := p.Breakdown()
		fmt.Printf("coincidence:  %.4f\n", b.Coincidence)
		fmt.Printf("characters:   %.4f\n", b.Characters)
		fmt.Printf("distribution: %.4f\n", b.Distribution)
		fmt.Printf("bigrams:      %.4f\n", b.Bigrams)
		if b.HasWords {
			fmt.Printf("words:        %.4f\n", b.Words)
		} else {
			fmt.Println("words:        skipped (no word boundaries)")
		}
	}
	return 0
}
