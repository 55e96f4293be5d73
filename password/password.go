package password

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for entry parsing.
var (
	// ErrMalformedEntry indicates a line that does not follow "<low>-<high> <char>: <password>".
	ErrMalformedEntry = errors.New("password: malformed entry")
	// ErrInvalidRange indicates a policy whose lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("password: policy low bound exceeds high bound")
)

// Policy requires Char to occur between Low and High times, inclusive.
type Policy struct {
	Low, High int
	Char      rune
}

// Allows reports whether pw satisfies p.
// Complexity: O(len(pw)).
func (p Policy) Allows(pw string) bool {
	n := strings.Count(pw, string(p.Char))

	return n >= p.Low && n <= p.High
}

// Entry is one database line: a policy and the password stored under it.
type Entry struct {
	Policy   Policy
	Password string
}

// Valid reports whether the entry's password satisfies its policy.
func (e Entry) Valid() bool {
	return e.Policy.Allows(e.Password)
}

// ParseEntry parses a "<low>-<high> <char>: <password>" line.
// The line holds exactly one ':', followed by a single space that separates
// it from the password.
func ParseEntry(line string) (Entry, error) {
	switch strings.Count(line, ":") {
	case 0:
		return Entry{}, fmt.Errorf("%w: %q: missing ':'", ErrMalformedEntry, line)
	case 1:
	default:
		return Entry{}, fmt.Errorf("%w: %q: more than one ':'", ErrMalformedEntry, line)
	}
	rule, pw, _ := strings.Cut(line, ":")
	pw, ok := strings.CutPrefix(pw, " ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q: missing space after ':'", ErrMalformedEntry, line)
	}

	bounds, char, ok := strings.Cut(strings.TrimSpace(rule), " ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q: missing space before policy character", ErrMalformedEntry, line)
	}
	if utf8.RuneCountInString(char) != 1 {
		return Entry{}, fmt.Errorf("%w: %q: policy character %q must be a single rune", ErrMalformedEntry, line, char)
	}
	r, _ := utf8.DecodeRuneInString(char)

	lowStr, highStr, ok := strings.Cut(bounds, "-")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q: missing '-' in bounds", ErrMalformedEntry, line)
	}
	low, err := strconv.Atoi(lowStr)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: low bound: %v", ErrMalformedEntry, line, err)
	}
	high, err := strconv.Atoi(highStr)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: high bound: %v", ErrMalformedEntry, line, err)
	}
	if low < 0 || high < 0 {
		return Entry{}, fmt.Errorf("%w: %q: bounds must be non-negative", ErrMalformedEntry, line)
	}
	if low > high {
		return Entry{}, fmt.Errorf("%w: %q: %d > %d", ErrInvalidRange, line, low, high)
	}

	return Entry{Policy: Policy{Low: low, High: high, Char: r}, Password: pw}, nil
}

// CountValid parses every line and counts the entries whose password
// satisfies its policy. Blank lines are skipped. The first malformed line
// aborts the count; the error names its 1-based line number.
func CountValid(lines []string) (int, error) {
	valid := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if e.Valid() {
			valid++
		}
	}

	return valid, nil
}
