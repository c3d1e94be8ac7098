// Package solve answers the two reindeer-maze queries: the minimal route cost,
// and the set of cells lying on any route of that cost.
//
// A maze with no route from Start to End is a normal outcome reported as
// ErrNoPath, never as cost 0 or a panic.
package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/bfs"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

// ErrNoPath indicates that no sequence of moves connects Start to End.
var ErrNoPath = errors.New("solve: no path from start to end")

// DefaultMaxPaths bounds Paths when the caller passes maxPaths == 0.
// The number of minimal routes can grow exponentially with maze size.
const DefaultMaxPaths = 10000

// Solution is the answer to a full query.
type Solution struct {
	// Cost is the minimal route cost.
	Cost int64
	// Cells holds every cell on at least one minimal route, sorted row-major.
	Cells []maze.Coord
	// Stats counts the search work.
	Stats dijkstra.Stats
}

// Solve searches m with predecessor tracking and returns the minimal cost
// together with every cell on a minimal route. Extra options are passed to
// dijkstra.Search.
func Solve(m *maze.Maze, opts ...dijkstra.Option) (*Solution, error) {
	res, err := search(m, append([]dijkstra.Option{dijkstra.WithPredecessors()}, opts...))
	if err != nil {
		return nil, err
	}
	best, targets, _ := bfs.OptimalTargets(res)
	back, err := bfs.Backtrack(res, targets)
	if err != nil {
		return nil, err
	}
	return &Solution{Cost: best, Cells: back.Cells, Stats: res.Stats}, nil
}

// SolveCostOnly returns the minimal route cost without predecessor bookkeeping.
func SolveCostOnly(m *maze.Maze, opts ...dijkstra.Option) (int64, error) {
	res, err := search(m, opts)
	if err != nil {
		return 0, err
	}
	best, _ := res.BestAt(m.End())
	return best, nil
}

// Paths returns every distinct minimal route as a Start→End coordinate list.
// More than maxPaths routes yields bfs.ErrTooManyPaths before any route is
// built. maxPaths == 0 means DefaultMaxPaths; a negative value lifts the bound.
func Paths(m *maze.Maze, maxPaths int, opts ...dijkstra.Option) ([][]maze.Coord, error) {
	switch {
	case maxPaths == 0:
		maxPaths = DefaultMaxPaths
	case maxPaths < 0:
		maxPaths = 0
	}
	res, err := search(m, append([]dijkstra.Option{dijkstra.WithPredecessors()}, opts...))
	if err != nil {
		return nil, err
	}
	_, targets, _ := bfs.OptimalTargets(res)
	return bfs.Paths(res, targets, bfs.WithMaxPaths(maxPaths))
}

// CountRoutes returns the number of distinct minimal routes without
// enumerating them. Routes differing only in the direction of a U-turn count
// once. The count saturates at math.MaxUint64.
func CountRoutes(m *maze.Maze, opts ...dijkstra.Option) (uint64, error) {
	res, err := search(m, append([]dijkstra.Option{dijkstra.WithPredecessors()}, opts...))
	if err != nil {
		return 0, err
	}
	_, targets, _ := bfs.OptimalTargets(res)
	return bfs.CountRoutes(res, targets)
}

// search runs the stop-at-end search and converts an unreached End into ErrNoPath.
func search(m *maze.Maze, opts []dijkstra.Option) (*dijkstra.Result, error) {
	if m == nil {
		return nil, dijkstra.ErrNilMaze
	}
	res, err := dijkstra.Search(m, append([]dijkstra.Option{dijkstra.WithStopAtEnd()}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if _, _, ok := bfs.OptimalTargets(res); !ok {
		return nil, ErrNoPath
	}
	return res, nil
}
