// Package reindeer solves the reindeer maze: the cheapest route from Start to
// End through a grid of walls, where stepping forward costs 1 and turning 90°
// in place costs 1000, together with every cell that lies on some cheapest route.
//
// The search vertex is a (cell, facing) pair, not a cell, so the work is
// bounded by W×H×4 states regardless of how many co-optimal routes exist.
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/       — Cell, Coord, Facing and the immutable Maze grid, plus text parsing
//	dijkstra/   — state space model and the frontier-driven search with predecessor sets
//	bfs/        — backward traversal of predecessor sets: optimal cells, route counts, routes
//	solve/      — the query contract: Solve, SolveCostOnly, Paths, ErrNoPath
//	cmd/reindeer — command-line driver
//
// Quick example:
//
//	m, _ := maze.ParseString("#####\n#S.E#\n#####")
//	sol, _ := solve.Solve(m)
//	fmt.Println(sol.Cost, len(sol.Cells)) // 2 3
package reindeer
