package main

import (
	"flag"
	"fmt"
	"os"
)

const productName = "scytale"
const cliBanner = productName + " CLI (scytalectl)"

func init() {
	defaultUsage := flag.Usage
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), cliBanner)
		fmt.Fprintln(flag.CommandLine.Output())
		if defaultUsage != nil {
			defaultUsage()
		}
	}
}

func main() {
	flag.Parse()
	if maybePrintVersion() {
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch args[0] {
	case "classify":
		os.Exit(runClassify(args[1:]))
	case "score":
		os.Exit(runScore(args[1:]))
	case "encode":
		os.Exit(runEncode(args[1:]))
	case "decode":
		os.Exit(runDecode(args[1:]))
	case "enigma":
		os.Exit(runEnigma(args[1:]))
	case "crack":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "crack subcommand required (gronsfeld, enigma, or unwrap)")
			os.Exit(2)
		}
		switch args[1] {
		case "gronsfeld":
			os.Exit(runCrackGronsfeld(args[2:]))
		case "enigma":
			os.Exit(runCrackEnigma(args[2:]))
		case "unwrap":
			os.Exit(runCrackUnwrap(args[2:]))
		default:
			fmt.Fprintf(os.Stderr, "unknown crack subcommand: %s\n", args[1])
			os.Exit(2)
		}
	case "recipe":
		os.Exit(runRecipe(args[1:]))
	case "report":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "report subcommand required (rank, filter, or annotate)")
			os.Exit(2)
		}
		switch args[1] {
		case "rank":
			os.Exit(runReportRank(args[2:]))
		case "filter":
			os.Exit(runReportFilter(args[2:]))
		case "annotate":
			os.Exit(runReportAnnotate(args[2:]))
		default:
			fmt.Fprintf(os.Stderr, "unknown report subcommand: %s\n", args[1])
			os.Exit(2)
		}
	case "config":
		os.Exit(runConfig(args[1:]))
	case "version":
		os.Exit(runVersion(args[1:]))
	case "self-update":
		os.Exit(runSelfUpdate(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}
