package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/scytale-dev/scytale/internal/classify"
)

func runClassify(args []string) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the ciphertext")
	best := fs.Bool("best", false, "print only the single best matching family")
	asJSON := fs.Bool("json", false, "emit detection results as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		return 1
	}

	if *best {
		family, ok := classify.BestMatch(text)
		if !ok {
			fmt.Fprintln(os.Stderr, "no cipher family matched")
			return 1
		}
		fmt.Println(string(family))
		return 0
	}

	results, err := classify.NewDetector().Detect(context.Background(), []byte(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		return 1
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no cipher family matched")
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "classify: %v\n", err)
			return 1
		}
		return 0
	}

	for _, r := range results {
		fmt.Printf("%-14s %.2f  %s\n", r.Family, r.Confidence, r.Reasoning)
	}
	return 0
}
