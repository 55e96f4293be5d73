package render_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/advent2020/render"
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

// TestTrail_Small checks the exact overlay on a map that needs no repetition.
func TestTrail_Small(t *testing.T) {
	m, err := toboggan.Parse("..##\n#..#")
	require.NoError(t, err)

	out, err := render.Trail(m, toboggan.PrimarySlope, render.PlainStyles())
	require.NoError(t, err)
	assert.Equal(t, "O.##\n#..X", out)
}

// TestTrail_Sample repeats the sample three times and marks 7 hits and
// 4 misses, matching the puzzle illustration.
func TestTrail_Sample(t *testing.T) {
	m, err := toboggan.Parse(sampleMap)
	require.NoError(t, err)

	out, err := render.Trail(m, toboggan.PrimarySlope, render.PlainStyles())
	require.NoError(t, err)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 11)
	for _, row := range rows {
		assert.Len(t, row, 33)
	}
	assert.Equal(t, "O.##.........##.........##......", rows[0][:32])
	assert.Equal(t, "#..O#...#..#...#...#..#...#...#..", rows[1])
	assert.Equal(t, 7, strings.Count(out, "X"))
	assert.Equal(t, 4, strings.Count(out, "O"))
}

// TestTrail_DefaultStylesOnPipe uses a renderer that is not a terminal; the
// markers must still be countable.
func TestTrail_DefaultStylesOnPipe(t *testing.T) {
	m, err := toboggan.Parse(sampleMap)
	require.NoError(t, err)

	styles := render.DefaultStyles(lipgloss.NewRenderer(io.Discard))
	out, err := render.Trail(m, toboggan.Slope{Right: 1, Down: 2}, styles)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "X"))
	assert.Equal(t, 4, strings.Count(out, "O"))
}

// TestTrail_InvalidSlope propagates the traversal error.
func TestTrail_InvalidSlope(t *testing.T) {
	m, err := toboggan.Parse(sampleMap)
	require.NoError(t, err)

	_, err = render.Trail(m, toboggan.Slope{Right: 1}, render.PlainStyles())
	assert.ErrorIs(t, err, toboggan.ErrInvalidSlope)
}
