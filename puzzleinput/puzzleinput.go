// Package puzzleinput reads a puzzle input file and splits it into the
// shapes the solvers consume: raw text, lines, or one integer per line.
package puzzleinput

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrNotNumber indicates a line that should hold an integer but does not.
var ErrNotNumber = errors.New("puzzleinput: line is not an integer")

// ReadFile returns the whole content of path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("puzzleinput: read %s: %w", path, err)
	}

	return string(data), nil
}

// Lines splits raw on '\n', strips a trailing '\r' from every line and drops
// the empty line a final newline leaves behind.
func Lines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Ints parses one integer per line. Surrounding whitespace is ignored and
// blank lines are skipped. The error names the 1-based line number.
func Ints(raw string) ([]int, error) {
	lines := Lines(raw)
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		n, err := strconv.Atoi(l)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrNotNumber, i+1, l)
		}
		out = append(out, n)
	}

	return out, nil
}
