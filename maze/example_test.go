// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
)

// ExampleParseString parses a tiny maze and walks one step Right from Start.
func ExampleParseString() {
	m, err := maze.ParseString("#####\n#S.E#\n#####")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	next, _ := m.Neighbor(m.Start(), maze.Right)
	fmt.Println(m.Width, m.Height, m.Start(), m.End())
	fmt.Println(next, m.Classify(next))
	// Output:
	// 5 3 (1,1) (1,3)
	// (1,2) Open
}
