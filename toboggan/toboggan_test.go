package toboggan_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/advent2020/toboggan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#`

const smallMap = "..##\n#..#"

func mustParse(t *testing.T, raw string, opts ...toboggan.ParseOption) *toboggan.Map {
	t.Helper()
	m, err := toboggan.Parse(raw, opts...)
	require.NoError(t, err)

	return m
}

//----------------------------------------------------------------------------//
// Tiles and Parse
//----------------------------------------------------------------------------//

// TestTileFromRune checks that only '#' is a tree.
func TestTileFromRune(t *testing.T) {
	assert.Equal(t, toboggan.Tree, toboggan.TileFromRune('#'))
	for _, r := range []rune{'.', 'O', 'X', ' ', '0'} {
		assert.Equal(t, toboggan.Empty, toboggan.TileFromRune(r), "rune %q", r)
	}
	assert.Equal(t, '#', toboggan.Tree.Rune())
	assert.Equal(t, '.', toboggan.Empty.Rune())
}

// TestParse_SmallMap verifies dimensions and tile layout of a 4×2 map.
func TestParse_SmallMap(t *testing.T) {
	m := mustParse(t, smallMap)

	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 4, m.Width)
	want := [][]toboggan.Tile{
		{toboggan.Empty, toboggan.Empty, toboggan.Tree, toboggan.Tree},
		{toboggan.Tree, toboggan.Empty, toboggan.Empty, toboggan.Tree},
	}
	assert.Equal(t, want, m.Tiles)
	assert.Equal(t, smallMap, m.String())
}

// TestParse_SampleMap verifies dimensions of the puzzle sample.
func TestParse_SampleMap(t *testing.T) {
	m := mustParse(t, sampleMap)
	assert.Equal(t, 11, m.Height)
	assert.Equal(t, 11, m.Width)
}

// TestParse_TrimsAndSkipsBlankLines covers CRLF endings, indentation and a
// trailing newline.
func TestParse_TrimsAndSkipsBlankLines(t *testing.T) {
	m := mustParse(t, "  ..##\r\n\n#..#  \n")
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, smallMap, m.String())
}

// TestParse_Empty returns a 0×0 map rather than an error.
func TestParse_Empty(t *testing.T) {
	m := mustParse(t, "")
	assert.Equal(t, 0, m.Height)
	assert.Equal(t, 0, m.Width)
}

// TestParse_RaggedRowsRejected documents the strict default: unequal rows
// are an input error.
func TestParse_RaggedRowsRejected(t *testing.T) {
	_, err := toboggan.Parse("..##\n#.")
	if !errors.Is(err, toboggan.ErrNonRectangular) {
		t.Errorf("Parse(ragged) error = %v; want %v", err, toboggan.ErrNonRectangular)
	}
	if err != nil && !strings.Contains(err.Error(), "line 2 has 2 cells, want 4") {
		t.Errorf("Parse(ragged) error = %q; want row number and lengths", err)
	}
}

// TestParse_RaggedRowsPermissive documents the opt-in permissive mode: the
// width comes from the first row and missing cells read as Empty.
func TestParse_RaggedRowsPermissive(t *testing.T) {
	m := mustParse(t, "..##\n#.\n###.##", toboggan.WithRaggedRows())
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, 4, m.Width)

	tile, err := m.Check(toboggan.Position{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, toboggan.Empty, tile, "cell past a short row")

	tile, err = m.Check(toboggan.Position{X: 4, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, toboggan.Tree, tile, "x=4 wraps to column 0 of the long row")
}

//----------------------------------------------------------------------------//
// Check
//----------------------------------------------------------------------------//

// TestCheck_Wraparound verifies Check(width+k, y) == Check(k, y).
func TestCheck_Wraparound(t *testing.T) {
	m := mustParse(t, sampleMap)
	for y := 0; y < m.Height; y++ {
		for k := 0; k < m.Width; k++ {
			base, err := m.Check(toboggan.Position{X: k, Y: y})
			require.NoError(t, err)
			for rep := 1; rep <= 3; rep++ {
				got, err := m.Check(toboggan.Position{X: rep*m.Width + k, Y: y})
				require.NoError(t, err)
				assert.Equal(t, base, got, "k=%d y=%d rep=%d", k, y, rep)
			}
		}
	}
}

// TestCheck_Errors verifies the bounds preconditions.
func TestCheck_Errors(t *testing.T) {
	m := mustParse(t, smallMap)
	cases := []struct {
		name string
		pos  toboggan.Position
	}{
		{"BelowMap", toboggan.Position{X: 0, Y: 2}},
		{"AboveMap", toboggan.Position{X: 0, Y: -1}},
		{"LeftOfMap", toboggan.Position{X: -1, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Check(tc.pos)
			assert.ErrorIs(t, err, toboggan.ErrOutOfBounds)
		})
	}

	empty := mustParse(t, "")
	_, err := empty.Check(toboggan.Position{})
	assert.ErrorIs(t, err, toboggan.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Traverse
//----------------------------------------------------------------------------//

// TestTraverse_PrimarySlope counts 7 trees on the sample with slope (3,1).
func TestTraverse_PrimarySlope(t *testing.T) {
	m := mustParse(t, sampleMap)
	n, err := m.Traverse(toboggan.Tree, toboggan.PrimarySlope)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

// TestTraverseAll_DefaultSlopes checks each count and their product, 336.
func TestTraverseAll_DefaultSlopes(t *testing.T) {
	m := mustParse(t, sampleMap)
	counts, err := m.TraverseAll(toboggan.Tree, toboggan.DefaultSlopes())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7, 3, 4, 2}, counts)
	assert.Equal(t, 336, toboggan.Product(counts))
}

// TestTraverse_EmptyTarget counts open cells instead of trees: every visited
// cell is one or the other.
func TestTraverse_EmptyTarget(t *testing.T) {
	m := mustParse(t, sampleMap)
	open, err := m.Traverse(toboggan.Empty, toboggan.PrimarySlope)
	require.NoError(t, err)
	assert.Equal(t, 11-7, open)
}

// TestTraverse_StepCount verifies ceil((H - start.Y)/Down) visits for a
// range of slopes and starts.
func TestTraverse_StepCount(t *testing.T) {
	m := mustParse(t, sampleMap)
	for down := 1; down <= 4; down++ {
		for startY := 0; startY < m.Height; startY++ {
			visits := 0
			_, err := m.Traverse(toboggan.Tree, toboggan.Slope{Right: 2, Down: down},
				toboggan.WithStart(toboggan.Position{X: 1, Y: startY}),
				toboggan.WithOnVisit(func(toboggan.Position, toboggan.Tile) error {
					visits++
					return nil
				}),
			)
			require.NoError(t, err)
			want := (m.Height - startY + down - 1) / down
			assert.Equal(t, want, visits, "down=%d startY=%d", down, startY)
		}
	}
}

// TestTraverse_VisitOrder records the positions of a (3,1) walk on the
// small map: X keeps growing, lookups wrap.
func TestTraverse_VisitOrder(t *testing.T) {
	m := mustParse(t, smallMap)
	var seen []toboggan.Position
	var tiles []toboggan.Tile
	n, err := m.Traverse(toboggan.Tree, toboggan.PrimarySlope,
		toboggan.WithOnVisit(func(p toboggan.Position, tile toboggan.Tile) error {
			seen = append(seen, p)
			tiles = append(tiles, tile)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []toboggan.Position{{X: 0, Y: 0}, {X: 3, Y: 1}}, seen)
	assert.Equal(t, []toboggan.Tile{toboggan.Empty, toboggan.Tree}, tiles)
	assert.Equal(t, 1, n)
}

// TestTraverse_Errors verifies that invalid inputs and options are rejected.
func TestTraverse_Errors(t *testing.T) {
	m := mustParse(t, sampleMap)

	for _, s := range []toboggan.Slope{{Right: 1, Down: 0}, {Right: 1, Down: -1}, {Right: -1, Down: 1}} {
		if _, err := m.Traverse(toboggan.Tree, s); !errors.Is(err, toboggan.ErrInvalidSlope) {
			t.Errorf("slope %+v: want ErrInvalidSlope, got %v", s, err)
		}
	}

	_, err := m.Traverse(toboggan.Tree, toboggan.PrimarySlope, toboggan.WithStart(toboggan.Position{X: -1}))
	assert.ErrorIs(t, err, toboggan.ErrOptionViolation)

	_, err = m.Traverse(toboggan.Tree, toboggan.PrimarySlope, toboggan.WithStart(toboggan.Position{Y: 11}))
	assert.ErrorIs(t, err, toboggan.ErrOutOfBounds)

	empty := mustParse(t, "")
	_, err = empty.Traverse(toboggan.Tree, toboggan.PrimarySlope)
	assert.ErrorIs(t, err, toboggan.ErrEmptyGrid)

	_, err = m.TraverseAll(toboggan.Tree, []toboggan.Slope{toboggan.PrimarySlope, {Right: 1}})
	assert.ErrorIs(t, err, toboggan.ErrInvalidSlope)
}

// TestTraverse_OnVisitAbort ensures a hook error stops the walk.
func TestTraverse_OnVisitAbort(t *testing.T) {
	m := mustParse(t, sampleMap)
	stop := errors.New("stop")
	visits := 0
	_, err := m.Traverse(toboggan.Tree, toboggan.PrimarySlope,
		toboggan.WithOnVisit(func(toboggan.Position, toboggan.Tile) error {
			visits++
			if visits == 3 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

// TestNewSlope covers the validated constructor.
func TestNewSlope(t *testing.T) {
	s, err := toboggan.NewSlope(3, 1)
	require.NoError(t, err)
	assert.Equal(t, toboggan.PrimarySlope, s)

	_, err = toboggan.NewSlope(3, 0)
	assert.ErrorIs(t, err, toboggan.ErrInvalidSlope)
}

// TestDefaultSlopes_IsCopy ensures callers cannot mutate the shared set.
func TestDefaultSlopes_IsCopy(t *testing.T) {
	a := toboggan.DefaultSlopes()
	a[0].Right = 99
	assert.Equal(t, 1, toboggan.DefaultSlopes()[0].Right)
}
