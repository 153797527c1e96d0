package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scytale-dev/scytale/internal/report"
)

type repeatedArg []string

func (r *repeatedArg) String() string {
	if r == nil {
		return ""
	}
	return strings.Join(*r, ",")
}

func (r *repeatedArg) Set(value string) error {
	*r = append(*r, value)
	return nil
}

func runReportRank(args []string) int {
	fs := flag.NewFlagSet("report rank", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", report.DefaultCandidatesPath, "path to candidates JSONL input")
	output := fs.String("out", "", "path to write the ranked JSONL output (default: candidates.ranked.jsonl beside the input)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	in := strings.TrimSpace(*input)
	if in == "" {
		fmt.Fprintln(os.Stderr, "--input must be provided")
		return 2
	}
	out := strings.TrimSpace(*output)
	if out == "" {
		out = filepath.Join(filepath.Dir(in), "candidates.ranked.jsonl")
	}

	candidates, err := report.ReadJSONL(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load candidates: %v\n", err)
		return 1
	}

	ranked := report.Rank(candidates)
	if err := report.WriteJSONL(out, ranked); err != nil {
		fmt.Fprintf(os.Stderr, "write ranked candidates: %v\n", err)
		return 1
	}

	return 0
}

func runReportFilter(args []string) int {
	fs := flag.NewFlagSet("report filter", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", report.DefaultCandidatesPath, "path to candidates JSONL input")
	output := fs.String("out", "", "path to write the matching lines (default: stdout)")
	var wheres repeatedArg
	fs.Var(&wheres, "where", "keep lines matching the condition (e.g. score>0.8); repeatable")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if len(wheres) == 0 {
		fmt.Fprintln(os.Stderr, "at least one --where condition must be provided")
		return 2
	}
	conditions, code := parseConditions(wheres)
	if code != 0 {
		return code
	}

	lines, err := report.ReadLines(strings.TrimSpace(*input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load candidates: %v\n", err)
		return 1
	}

	matched, err := report.Filter(lines, conditions...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filter candidates: %v\n", err)
		return 1
	}

	return writeReportLines(strings.TrimSpace(*output), matched)
}

func runReportAnnotate(args []string) int {
	fs := flag.NewFlagSet("report annotate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", report.DefaultCandidatesPath, "path to candidates JSONL input")
	output := fs.String("out", "", "path to write the annotated lines (default: stdout)")
	var sets repeatedArg
	fs.Var(&sets, "set", "field to set on matching lines (path=value, e.g. triage.state=confirmed); repeatable")
	var wheres repeatedArg
	fs.Var(&wheres, "where", "annotate only lines matching the condition; repeatable")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if len(sets) == 0 {
		fmt.Fprintln(os.Stderr, "at least one --set path=value must be provided")
		return 2
	}
	type annotation struct {
		path  string
		value string
	}
	annotations := make([]annotation, 0, len(sets))
	for _, raw := range sets {
		path, value, ok := strings.Cut(raw, "=")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			fmt.Fprintf(os.Stderr, "invalid --set value %q: want path=value\n", raw)
			return 2
		}
		annotations = append(annotations, annotation{path: path, value: value})
	}
	conditions, code := parseConditions(wheres)
	if code != 0 {
		return code
	}

	lines, err := report.ReadLines(strings.TrimSpace(*input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load candidates: %v\n", err)
		return 1
	}

	for i, line := range lines {
		matched := true
		for _, condition := range conditions {
			ok, err := condition.Match(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", i+1, err)
				return 1
			}
			if !ok {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		for _, a := range annotations {
			line, err = report.Annotate(line, a.path, a.value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", i+1, err)
				return 1
			}
		}
		lines[i] = line
	}

	return writeReportLines(strings.TrimSpace(*output), lines)
}

func parseConditions(raw []string) ([]report.Where, int) {
	conditions := make([]report.Where, 0, len(raw))
	for _, value := range raw {
		condition, err := report.ParseWhere(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --where value %q: %v\n", value, err)
			return nil, 2
		}
		conditions = append(conditions, condition)
	}
	return conditions, 0
}

func writeReportLines(out string, lines [][]byte) int {
	if out != "" {
		if err := report.WriteLines(out, lines); err != nil {
			fmt.Fprintf(os.Stderr, "write candidates: %v\n", err)
			return 1
		}
		return 0
	}
	for _, line := range lines {
		fmt.Println(string(line))
	}
	return 0
}
