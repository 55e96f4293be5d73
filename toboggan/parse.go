package toboggan

import (
	"fmt"
	"strings"
)

// Parse builds a Map from raw text, one row per line.
// Each line is trimmed of surrounding whitespace; lines left blank are
// skipped. '#' becomes Tree, anything else Empty.
// Height is the number of rows kept, Width the length of the first row
// (0 for no rows, in which case an empty Map and a nil error are returned).
// Returns ErrNonRectangular, naming the 1-based input line, if a row length
// differs from Width, unless WithRaggedRows is given.
// Complexity: O(W×H) time and memory.
func Parse(raw string, opts ...ParseOption) (*Map, error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var tiles [][]Tile
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Tile, 0, len(line))
		for _, r := range line {
			row = append(row, TileFromRune(r))
		}
		if len(tiles) > 0 && len(row) != len(tiles[0]) && !o.AllowRagged {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, i+1, len(row), len(tiles[0]))
		}
		tiles = append(tiles, row)
	}

	m := &Map{Height: len(tiles), Tiles: tiles}
	if m.Height > 0 {
		m.Width = len(tiles[0])
	}

	return m, nil
}

// String renders the map back to its text form, one row per line.
func (m *Map) String() string {
	var sb strings.Builder
	for y, row := range m.Tiles {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
	}

	return sb.String()
}
