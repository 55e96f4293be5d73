package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent2020/password"
	"github.com/katalvlaran/advent2020/puzzleinput"
)

// PasswordPolicy is day 2: count database entries whose password meets the
// occurrence-count policy stored beside it.
type PasswordPolicy struct{}

func (*PasswordPolicy) Day() int      { return 2 }
func (*PasswordPolicy) Title() string { return "Password Philosophy" }

func (*PasswordPolicy) Solve(raw string, log zerolog.Logger) ([]Answer, error) {
	lines := puzzleinput.Lines(raw)
	log.Debug().Int("lines", len(lines)).Msg("parsed password database")

	valid, err := password.CountValid(lines)
	if err != nil {
		return nil, err
	}

	return []Answer{{
		Part:  1,
		Value: valid,
		Found: true,
		Text:  fmt.Sprintf("input had %d valid passwords", valid),
	}}, nil
}
