package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/scytale-dev/scytale/internal/cipher"
)

// codecParams collects the key material flags shared by encode and
// decode into an operation parameter map.
func codecParams(fs *flag.FlagSet, key, alphabetSpec *string, shift *int) map[string]interface{} {
	params := make(map[string]interface{})
	if *key != "" {
		params["key"] = *key
	}
	if *alphabetSpec != "" {
		params["alphabet"] = *alphabetSpec
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "shift" {
			params["shift"] = *shift
		}
	})
	return params
}

// resolveOperation maps a cipher family name to its registered
// operation, trying the codec suffix first and the keyed suffix second.
func resolveOperation(family string, suffixes ...string) (cipher.Operation, bool) {
	for _, suffix := range suffixes {
		if op, ok := cipher.GetOperation(family + suffix); ok {
			return op, true
		}
	}
	return nil, false
}

func listOperations() {
	for _, op := range cipher.ListOperations() {
		fmt.Printf("%-22s %-8s %s\n", op.Name(), op.Type(), op.Description())
	}
}

func runEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the plaintext")
	key := fs.String("key", "", "cipher key for keyed families")
	alphabetSpec := fs.String("alphabet", "", "cipher alphabet override")
	shift := fs.Int("shift", 0, "shift amount for the caesar cipher")
	list := fs.Bool("list", false, "list the registered operations and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *list {
		listOperations()
		return 0
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "encode requires a cipher family, such as: encode base64 <text>")
		return 2
	}

	family := fs.Arg(0)
	op, ok := resolveOperation(family, "_encode", "_encrypt")
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown cipher family: %s\n", family)
		return 2
	}

	text, err := readText(fs.Args()[1:], *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}

	out, err := op.Execute(context.Background(), []byte(text), codecParams(fs, key, alphabetSpec, shift))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the encoded text")
	key := fs.String("key", "", "cipher key for keyed families")
	alphabetSpec := fs.String("alphabet", "", "cipher alphabet override")
	shift := fs.Int("shift", 0, "shift amount for the caesar cipher")
	recipeName := fs.String("recipe", "", "run a stored recipe pipeline instead of a single family")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *recipeName != "" {
		return runRecipePipeline(*recipeName, fs.Args(), *input)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "decode requires a cipher family, such as: decode base64 <text>")
		return 2
	}

	family := fs.Arg(0)
	op, ok := resolveOperation(family, "_decode", "_decrypt")
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown cipher family: %s\n", family)
		return 2
	}

	text, err := readText(fs.Args()[1:], *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	out, err := op.Execute(context.Background(), []byte(text), codecParams(fs, key, alphabetSpec, shift))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// runRecipePipeline executes a stored recipe against the input text.
func runRecipePipeline(name string, positional []string, inputPath string) int {
	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	recipe, ok := manager.GetRecipe(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown recipe: %s\n", name)
		return 2
	}

	text, err := readText(positional, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	out, err := recipe.Pipeline.Execute(context.Background(), []byte(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipe %s: %v\n", name, err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
