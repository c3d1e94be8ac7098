package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/reindeer/bfs"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

// ExampleOptimalCells lists the cells shared by the two mirror-image routes
// around a wall block.
func ExampleOptimalCells() {
	m, _ := maze.ParseString("#######\n#.....#\n#S###E#\n#.....#\n#######")
	res, _ := dijkstra.Search(m, dijkstra.WithPredecessors())
	cells, err := bfs.OptimalCells(res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(cells), cells[0], cells[len(cells)-1])

	_, targets, _ := bfs.OptimalTargets(res)
	routes, _ := bfs.Paths(res, targets)
	for _, r := range routes {
		fmt.Println(r)
	}
	// Output:
	// 12 (1,1) (3,5)
	// [(2,1) (3,1) (3,2) (3,3) (3,4) (3,5) (2,5)]
	// [(2,1) (1,1) (1,2) (1,3) (1,4) (1,5) (2,5)]
}
