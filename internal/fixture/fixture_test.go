package fixture_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/internal/fixture"
	"github.com/katalvlaran/reindeer/maze"
)

func TestRandomMaze_TooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, wh := range [][2]int{{1, 1}, {0, 5}, {5, 0}} {
		assert.Panics(t, func() { fixture.RandomMaze(rng, wh[0], wh[1], 0.3) }, "%dx%d", wh[0], wh[1])
	}
}

func TestRandomMaze_TwoCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		for _, wh := range [][2]int{{1, 2}, {2, 1}} {
			m := fixture.RandomMaze(rng, wh[0], wh[1], 0.5)
			assert.NotEqual(t, m.Start(), m.End())
			assert.Equal(t, 2, m.Len())
		}
	}
}

func TestRings_Layout(t *testing.T) {
	want := strings.Join([]string{
		"###############",
		"#.....#.....###",
		"#S###...###..E#",
		"#.....#.....###",
		"###############",
	}, "\n")
	assert.Equal(t, want, fixture.Rings(2))

	m, err := maze.ParseString(fixture.Rings(9))
	require.NoError(t, err)
	assert.Equal(t, maze.Coord{Row: 2, Col: 1}, m.Start())
	assert.Equal(t, maze.Coord{Row: 2, Col: 55}, m.End())
}
