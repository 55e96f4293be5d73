// Package toboggan defines core types, options, and sentinel errors
// for slope traversal over a repeating tile map.
package toboggan

import (
	"errors"
)

// Sentinel errors for toboggan operations.
var (
	// ErrEmptyGrid indicates the map has no rows or no columns.
	ErrEmptyGrid = errors.New("toboggan: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("toboggan: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the map's rows or left of column 0.
	ErrOutOfBounds = errors.New("toboggan: position out of bounds")
	// ErrInvalidSlope indicates a slope that does not move down or that moves left.
	ErrInvalidSlope = errors.New("toboggan: slope must move down and must not move left")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("toboggan: invalid option supplied")
)

// Tile is the terrain marker of a single map cell.
type Tile int

const (
	// Empty is open snow; every character other than '#' parses to Empty.
	Empty Tile = iota
	// Tree is parsed from '#'.
	Tree
)

// TileFromRune maps an input character to its Tile.
func TileFromRune(r rune) Tile {
	if r == '#' {
		return Tree
	}

	return Empty
}

// Rune returns the canonical input character for t.
func (t Tile) Rune() rune {
	if t == Tree {
		return '#'
	}

	return '.'
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	switch t {
	case Tree:
		return "Tree"
	case Empty:
		return "Empty"
	default:
		return "Tile(?)"
	}
}

// Position is a cell coordinate: X is the column, Y the row.
// X may exceed the map width; lookups wrap it.
type Position struct {
	X, Y int
}

// Add returns p moved by one step of s.
func (p Position) Add(s Slope) Position {
	return Position{X: p.X + s.Right, Y: p.Y + s.Down}
}

// Slope is the per-step displacement of a traversal.
type Slope struct {
	Right int // columns per step, ≥ 0
	Down  int // rows per step, > 0
}

// PrimarySlope is the single slope of the first puzzle part: right 3, down 1.
var PrimarySlope = Slope{Right: 3, Down: 1}

// NewSlope validates and returns a Slope.
// Returns ErrInvalidSlope if down ≤ 0 or right < 0.
func NewSlope(right, down int) (Slope, error) {
	s := Slope{Right: right, Down: down}
	if err := s.Validate(); err != nil {
		return Slope{}, err
	}

	return s, nil
}

// Validate reports ErrInvalidSlope for a slope that would never terminate
// or that moves left.
func (s Slope) Validate() error {
	if s.Down <= 0 || s.Right < 0 {
		return ErrInvalidSlope
	}

	return nil
}

// DefaultSlopes returns a fresh copy of the slope set checked by the second
// puzzle part: (1,1), (3,1), (5,1), (7,1), (1,2).
func DefaultSlopes() []Slope {
	return []Slope{
		{Right: 1, Down: 1},
		{Right: 3, Down: 1},
		{Right: 5, Down: 1},
		{Right: 7, Down: 1},
		{Right: 1, Down: 2},
	}
}

// Map is a parsed tile grid. It is immutable once built.
// Width is the length of the first row; Tiles[y][x] holds the cell at (x,y).
type Map struct {
	Width, Height int
	Tiles         [][]Tile
}
