// Package render draws the trail of a toboggan run over its map, in the
// notation of the puzzle statement: visited open cells become 'O', visited
// trees 'X'. The map pattern is repeated to the right as far as the run goes.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/advent2020/toboggan"
)

// Markers for visited cells.
const (
	HitRune  = 'X'
	MissRune = 'O'
)

// Styles colour each kind of cell.
type Styles struct {
	Tree lipgloss.Style // unvisited tree
	Snow lipgloss.Style // unvisited open cell
	Hit  lipgloss.Style // visited tree
	Miss lipgloss.Style // visited open cell
}

// DefaultStyles returns the terminal palette bound to r. A renderer whose
// output is not a terminal degrades to plain text.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Tree: r.NewStyle().Foreground(lipgloss.Color("28")),             // Dark green
		Snow: r.NewStyle().Foreground(lipgloss.Color("255")),            // Bright white
		Hit:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),   // Bright red
		Miss: r.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // Bright yellow
	}
}

// PlainStyles returns unstyled cells.
func PlainStyles() Styles {
	return Styles{
		Tree: lipgloss.NewStyle(),
		Snow: lipgloss.NewStyle(),
		Hit:  lipgloss.NewStyle(),
		Miss: lipgloss.NewStyle(),
	}
}

// Trail runs m.Traverse along slope and returns the map with every visited
// cell marked. Options are passed through to Traverse; a WithOnVisit option
// among them is replaced by the recorder.
// Returns any error of Traverse.
// Complexity: O(H × W × repeats).
func Trail(m *toboggan.Map, slope toboggan.Slope, styles Styles, opts ...toboggan.TraverseOption) (string, error) {
	visited := make(map[toboggan.Position]bool)
	maxX := 0
	record := toboggan.WithOnVisit(func(p toboggan.Position, _ toboggan.Tile) error {
		visited[p] = true
		if p.X > maxX {
			maxX = p.X
		}
		return nil
	})
	if _, err := m.Traverse(toboggan.Tree, slope, append(opts[:len(opts):len(opts)], record)...); err != nil {
		return "", err
	}

	cols := (maxX/m.Width + 1) * m.Width
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			p := toboggan.Position{X: x, Y: y}
			tile, err := m.Check(p)
			if err != nil {
				return "", err
			}
			sb.WriteString(cell(tile, visited[p], styles))
		}
	}

	return sb.String(), nil
}

func cell(t toboggan.Tile, visited bool, s Styles) string {
	switch {
	case visited && t == toboggan.Tree:
		return s.Hit.Render(string(HitRune))
	case visited:
		return s.Miss.Render(string(MissRune))
	case t == toboggan.Tree:
		return s.Tree.Render(string(t.Rune()))
	default:
		return s.Snow.Render(string(t.Rune()))
	}
}
