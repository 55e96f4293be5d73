package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent2020/puzzleinput"
	"github.com/katalvlaran/advent2020/subsetsum"
)

// ExpenseReport is day 1: find entries summing to Target, once per depth,
// and report their product.
type ExpenseReport struct {
	Target int
	Depths []int
}

func (*ExpenseReport) Day() int      { return 1 }
func (*ExpenseReport) Title() string { return "Report Repair" }

// Solve answers one part per configured depth. A depth with no combination
// yields an Answer with Found == false, not an error.
func (s *ExpenseReport) Solve(raw string, log zerolog.Logger) ([]Answer, error) {
	entries, err := puzzleinput.Ints(raw)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("entries", len(entries)).Int("target", s.Target).Msg("parsed expense report")

	answers := make([]Answer, 0, len(s.Depths))
	for i, depth := range s.Depths {
		combo, found, err := subsetsum.Search(entries, s.Target, depth)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}
		if !found {
			log.Debug().Int("depth", depth).Msg("no combination")
			answers = append(answers, Answer{
				Part: i + 1,
				Text: fmt.Sprintf("found no %d entries summing to %d", depth, s.Target),
			})
			continue
		}

		product := subsetsum.Product(combo)
		log.Debug().Int("depth", depth).Ints("combination", combo).Int("product", product).Msg("combination found")
		answers = append(answers, Answer{
			Part:  i + 1,
			Value: product,
			Found: true,
			Text:  fmt.Sprintf("found matching numbers %v in data set; their product is %d", combo, product),
		})
	}

	return answers, nil
}
