package toboggan

import (
	"fmt"
)

// InRows reports whether row y lies within the map. Columns are unbounded
// to the right, so only y is checked.
// Complexity: O(1).
func (m *Map) InRows(y int) bool {
	return y >= 0 && y < m.Height
}

// Check returns the tile at pos, wrapping pos.X modulo Width.
// Returns ErrEmptyGrid for a map without cells and ErrOutOfBounds if pos.Y
// is outside the rows or pos.X is negative.
// Complexity: O(1).
func (m *Map) Check(pos Position) (Tile, error) {
	if m.Width == 0 || m.Height == 0 {
		return Empty, ErrEmptyGrid
	}
	if pos.X < 0 || !m.InRows(pos.Y) {
		return Empty, fmt.Errorf("%w: (%d,%d) on a %dx%d map", ErrOutOfBounds, pos.X, pos.Y, m.Width, m.Height)
	}
	row := m.Tiles[pos.Y]
	x := pos.X % m.Width
	if x >= len(row) {
		// short row, only reachable with WithRaggedRows
		return Empty, nil
	}

	return row[x], nil
}

// Traverse walks from the start position (origin by default) along slope
// until it passes the last row, counting visited cells equal to target.
//
// Algorithm Outline:
//  1. Check the tile at the current position; count it if it equals target.
//  2. Advance by (slope.Right, slope.Down).
//  3. Stop once Y ≥ Height.
//
// Exactly ceil((Height - start.Y) / slope.Down) cells are visited.
//
// Returns ErrInvalidSlope for a slope that does not move down, ErrEmptyGrid
// for an empty map, ErrOutOfBounds for a start below the map,
// ErrOptionViolation for bad options, or any OnVisit error.
// Complexity: O(Height/slope.Down) time, O(1) memory.
func (m *Map) Traverse(target Tile, slope Slope, opts ...TraverseOption) (int, error) {
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if err := slope.Validate(); err != nil {
		return 0, fmt.Errorf("%w: got right=%d down=%d", err, slope.Right, slope.Down)
	}

	collisions := 0
	pos := o.Start
	for {
		tile, err := m.Check(pos)
		if err != nil {
			return 0, err
		}
		if err = o.OnVisit(pos, tile); err != nil {
			return 0, fmt.Errorf("toboggan: visit (%d,%d): %w", pos.X, pos.Y, err)
		}
		if tile == target {
			collisions++
		}

		pos = pos.Add(slope)
		if pos.Y >= m.Height {
			return collisions, nil
		}
	}
}

// TraverseAll runs Traverse once per slope and returns the collision counts
// in slope order. Options apply to every run. The first error aborts.
// Complexity: O(len(slopes)×Height).
func (m *Map) TraverseAll(target Tile, slopes []Slope, opts ...TraverseOption) ([]int, error) {
	counts := make([]int, 0, len(slopes))
	for i, s := range slopes {
		n, err := m.Traverse(target, s, opts...)
		if err != nil {
			return nil, fmt.Errorf("slope #%d: %w", i, err)
		}
		counts = append(counts, n)
	}

	return counts, nil
}

// Product multiplies collision counts. The product of no counts is 1.
// Overflow is not checked.
func Product(counts []int) int {
	p := 1
	for _, c := range counts {
		p *= c
	}

	return p
}
