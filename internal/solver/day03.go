package solver

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent2020/render"
	"github.com/katalvlaran/advent2020/toboggan"
)

// TobogganRun is day 3: count trees along Primary, then multiply the counts
// along every slope in Slopes.
type TobogganRun struct {
	Primary toboggan.Slope
	Slopes  []toboggan.Slope

	// Trail, when set, receives the rendered Primary run drawn with Styles.
	Trail  io.Writer
	Styles render.Styles
}

func (*TobogganRun) Day() int      { return 3 }
func (*TobogganRun) Title() string { return "Toboggan Trajectory" }

func (s *TobogganRun) Solve(raw string, log zerolog.Logger) ([]Answer, error) {
	m, err := toboggan.Parse(raw)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("width", m.Width).Int("height", m.Height).Msg("parsed map")

	trees, err := m.Traverse(toboggan.Tree, s.Primary)
	if err != nil {
		return nil, fmt.Errorf("part 1: %w", err)
	}

	counts, err := m.TraverseAll(toboggan.Tree, s.Slopes)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}
	product := toboggan.Product(counts)
	log.Debug().Ints("counts", counts).Int("product", product).Msg("slopes checked")

	if s.Trail != nil {
		out, err := render.Trail(m, s.Primary, s.Styles)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if _, err = fmt.Fprintln(s.Trail, out); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}

	return []Answer{
		{
			Part:  1,
			Value: trees,
			Found: true,
			Text:  fmt.Sprintf("map had %d collisions with trees", trees),
		},
		{
			Part:  2,
			Value: product,
			Found: true,
			Text:  fmt.Sprintf("product of the test slopes was %d", product),
		},
	}, nil
}
