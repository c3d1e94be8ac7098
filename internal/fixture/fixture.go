// Package fixture holds the published reindeer maze examples shared by tests.
package fixture

import "bytes"

// Maze is a literal maze together with its known answers.
type Maze struct {
	Name  string
	Text  string
	Cost  int64
	Cells int
	Paths uint64
}

// Small is the 15×15 example maze.
var Small = Maze{
	Name: "small",
	Text: `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`,
	Cost:  7036,
	Cells: 45,
	Paths: 3,
}

// Large is the 17×17 example maze.
var Large = Maze{
	Name: "large",
	Text: `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`,
	Cost:  11048,
	Cells: 64,
	Paths: 2,
}

// All lists every published fixture.
var All = []Maze{Small, Large}

// Symmetric has two mirror-image routes of equal cost 3006 around a wall block.
const Symmetric = `#######
#.....#
#S###E#
#.....#
#######`

// WalledIn encloses Start so no first move exists.
const WalledIn = `#####
#S#E#
#####`

// Rings chains k wall blocks along a 5-row corridor. Each block splits the
// route into a top and a bottom detour of equal cost that rejoin before the
// next block, so the maze has 2^k optimal routes of cost 4008·k covering
// 13·k+1 cells.
//
//	###############
//	#.....#.....###
//	#S###...###..E#
//	#.....#.....###
//	###############
func Rings(k int) string {
	w := 1 + 6*k + 2
	rows := make([][]byte, 5)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{'#'}, w)
	}
	for i := 0; i < k; i++ {
		c := 1 + 6*i
		for d := 0; d < 5; d++ {
			rows[1][c+d] = '.'
			rows[3][c+d] = '.'
		}
		rows[2][c] = '.'
		rows[2][c+4] = '.'
		rows[2][c+5] = '.'
	}
	rows[2][1] = 'S'
	rows[2][1+6*k] = 'E'
	return string(bytes.Join(rows, []byte{'\n'}))
}
