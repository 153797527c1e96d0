package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Where is one parsed filter condition over candidate JSON.
type Where struct {
	Path  string
	Op    string
	Value string
}

// Comparison operators, longest first so ParseWhere matches ">=" before
// ">".
var whereOps = []string{"!=", ">=", "<=", "=", ">", "<"}

// ParseWhere splits a condition like "signals.bigrams>0.9" or
// "family=gronsfeld" into its path, operator, and value.
func ParseWhere(condition string) (Where, error) {
	condition = strings.TrimSpace(condition)
	for _, op := range whereOps {
		idx := strings.Index(condition, op)
		if idx <= 0 {
			continue
		}
		where := Where{
			Path:  strings.TrimSpace(condition[:idx]),
			Op:    op,
			Value: strings.TrimSpace(condition[idx+len(op):]),
		}
		if where.Path == "" || where.Value == "" {
			return Where{}, fmt.Errorf("incomplete condition %q", condition)
		}
		return where, nil
	}
	return Where{}, fmt.Errorf("condition %q has no operator (expected one of %s)", condition, strings.Join(whereOps, " "))
}

// Match reports whether one candidate JSON line satisfies the
// condition. Missing paths match only "!=".
func (w Where) Match(line []byte) (bool, error) {
	result := gjson.GetBytes(line, w.Path)
	if !result.Exists() {
		return w.Op == "!=", nil
	}

	switch w.Op {
	case "=":
		return result.String() == w.Value, nil
	case "!=":
		return result.String() != w.Value, nil
	}

	bound, err := strconv.ParseFloat(w.Value, 64)
	if err != nil {
		return false, fmt.Errorf("condition value %q is not numeric", w.Value)
	}
	got := result.Float()
	switch w.Op {
	case ">":
		return got > bound, nil
	case ">=":
		return got >= bound, nil
	case "<":
		return got < bound, nil
	case "<=":
		return got <= bound, nil
	}
	return false, fmt.Errorf("unsupported operator %q", w.Op)
}

// Filter keeps the JSON lines satisfying every condition.
func Filter(lines [][]byte, conditions ...Where) ([][]byte, error) {
	var kept [][]byte
	for i, line := range lines {
		matched := true
		for _, condition := range conditions {
			ok, err := condition.Match(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if !ok {
				matched = false
				break
			}
		}
		if matched {
			kept = append(kept, line)
		}
	}
	return kept, nil
}

// Annotate sets a field on one candidate JSON line. Values parsing as
// booleans or numbers are stored typed; everything else is a string.
func Annotate(line []byte, path, value string) ([]byte, error) {
	var typed interface{} = value
	if parsed, err := strconv.ParseBool(value); err == nil {
		typed = parsed
	} else if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		typed = parsed
	}

	annotated, err := sjson.SetBytes(line, path, typed)
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", path, err)
	}
	return annotated, nil
}

// ReadLines loads the raw JSON lines of a report file, preserving each
// line exactly for gjson and sjson to work on.
func ReadLines(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer file.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64<<10), 4<<20)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		lines = append(lines, []byte(raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return lines, nil
}

// WriteLines writes raw JSON lines back to a report file.
func WriteLines(path string, lines [][]byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report output: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush report output: %w", err)
	}
	return nil
}
