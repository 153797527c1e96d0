package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readText resolves the text a subcommand operates on: the positional
// argument wins, then the --input file, then stdin. Trailing newlines
// from files and pipes are stripped so shell-fed input round-trips.
func readText(positional []string, inputPath string) (string, error) {
	if len(positional) > 0 {
		return strings.Join(positional, " "), nil
	}
	if strings.TrimSpace(inputPath) != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
