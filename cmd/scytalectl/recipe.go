package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scytale-dev/scytale/internal/cipher"
)

// recipesDir returns the recipe store under the user config directory.
func recipesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".scytale", "recipes"), nil
}

// openRecipeManager loads the stored recipes and seeds the built-ins.
func openRecipeManager() (*cipher.RecipeManager, error) {
	dir, err := recipesDir()
	if err != nil {
		return nil, err
	}
	manager := cipher.NewRecipeManager(dir)
	if err := manager.LoadRecipes(); err != nil {
		return nil, err
	}
	manager.SeedBuiltins()
	return manager, nil
}

func runRecipe(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "recipe subcommand required (list, show, save, delete, or run)")
		return 2
	}

	switch args[0] {
	case "list":
		return runRecipeList(args[1:])
	case "show":
		return runRecipeShow(args[1:])
	case "save":
		return runRecipeSave(args[1:])
	case "delete":
		return runRecipeDelete(args[1:])
	case "run":
		return runRecipeRun(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown recipe subcommand: %s\n", args[0])
		return 2
	}
}

func runRecipeList(args []string) int {
	fs := flag.NewFlagSet("recipe list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	for _, recipe := range manager.ListRecipes() {
		fmt.Printf("%-24s %s\n", recipe.Name, recipe.Description)
	}
	return 0
}

func runRecipeShow(args []string) int {
	fs := flag.NewFlagSet("recipe show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "recipe show requires exactly one recipe name")
		return 2
	}

	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	recipe, ok := manager.GetRecipe(fs.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown recipe: %s\n", fs.Arg(0))
		return 2
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipe); err != nil {
		fmt.Fprintf(os.Stderr, "encode recipe: %v\n", err)
		return 1
	}
	return 0
}

func runRecipeSave(args []string) int {
	fs := flag.NewFlagSet("recipe save", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "path to a recipe definition in JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*file) == "" {
		fmt.Fprintln(os.Stderr, "--file is required")
		return 2
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read recipe file: %v\n", err)
		return 1
	}
	var recipe cipher.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		fmt.Fprintf(os.Stderr, "parse recipe file: %v\n", err)
		return 1
	}

	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	if err := manager.SaveRecipe(&recipe); err != nil {
		fmt.Fprintf(os.Stderr, "save recipe: %v\n", err)
		return 1
	}
	fmt.Printf("saved recipe %s\n", recipe.Name)
	return 0
}

func runRecipeDelete(args []string) int {
	fs := flag.NewFlagSet("recipe delete", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "recipe delete requires exactly one recipe name")
		return 2
	}

	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	if err := manager.DeleteRecipe(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "delete recipe: %v\n", err)
		return 1
	}
	fmt.Printf("deleted recipe %s\n", fs.Arg(0))
	return 0
}

func runRecipeRun(args []string) int {
	fs := flag.NewFlagSet("recipe run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the input text")
	reverse := fs.Bool("reverse", false, "run the inverse pipeline")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "recipe run requires a recipe name")
		return 2
	}

	manager, err := openRecipeManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipes: %v\n", err)
		return 1
	}
	recipe, ok := manager.GetRecipe(fs.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown recipe: %s\n", fs.Arg(0))
		return 2
	}

	pipeline := &recipe.Pipeline
	if *reverse {
		pipeline, err = recipe.Pipeline.Reverse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "reverse recipe %s: %v\n", recipe.Name, err)
			return 1
		}
	}

	text, err := readText(fs.Args()[1:], *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipe run: %v\n", err)
		return 1
	}

	out, err := pipeline.Execute(context.Background(), []byte(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipe %s: %v\n", recipe.Name, err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
