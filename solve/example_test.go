package solve_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/solve"
)

// ExampleSolve prints both answers for a small corner maze.
func ExampleSolve() {
	m, _ := maze.ParseString("S.\n.E")
	sol, err := solve.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Cost)
	fmt.Println(len(sol.Cells), sol.Cells)
	// Output:
	// 1002
	// 3 [(0,0) (0,1) (1,1)]
}

// ExampleSolveCostOnly shows the no-path outcome.
func ExampleSolveCostOnly() {
	m, _ := maze.ParseString("#####\n#S#E#\n#####")
	_, err := solve.SolveCostOnly(m)
	fmt.Println(errors.Is(err, solve.ErrNoPath))
	// Output:
	// true
}
