package fixture

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

const unreached = dijkstra.Unreached

// RandomMaze builds a w×h maze whose cells are walls with probability
// wallProb, with Start and End on two distinct random cells. It panics
// unless w*h >= 2.
func RandomMaze(rng *rand.Rand, w, h int, wallProb float64) *maze.Maze {
	if w < 1 || h < 1 || w*h < 2 {
		panic(fmt.Sprintf("fixture: RandomMaze needs at least two cells, got %dx%d", w, h))
	}
	cells := make([][]maze.Cell, h)
	for y := range cells {
		cells[y] = make([]maze.Cell, w)
		for x := range cells[y] {
			if rng.Float64() < wallProb {
				cells[y][x] = maze.Wall
			} else {
				cells[y][x] = maze.Open
			}
		}
	}
	s := rng.Intn(w * h)
	e := rng.Intn(w*h - 1)
	if e >= s {
		e++
	}
	cells[s/w][s%w] = maze.Start
	cells[e/w][e%w] = maze.End
	m, err := maze.NewMaze(cells)
	if err != nil {
		panic(err)
	}
	return m
}

// moves lists every edge out of s with its cost, without using package dijkstra.
func moves(m *maze.Maze, s dijkstra.State) ([]dijkstra.State, []int64) {
	to := []dijkstra.State{
		{Pos: s.Pos, Facing: (s.Facing + 1) % 4},
		{Pos: s.Pos, Facing: (s.Facing + 3) % 4},
	}
	cost := []int64{1000, 1000}
	dr, dc := s.Facing.Delta()
	next := maze.Coord{Row: s.Pos.Row + dr, Col: s.Pos.Col + dc}
	if m.InBounds(next) && m.Classify(next) != maze.Wall {
		to = append(to, dijkstra.State{Pos: next, Facing: s.Facing})
		cost = append(cost, 1)
	}
	return to, cost
}

func allStates(m *maze.Maze) []dijkstra.State {
	var out []dijkstra.State
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			for f := maze.Facing(0); f < 4; f++ {
				out = append(out, dijkstra.State{Pos: maze.Coord{Row: y, Col: x}, Facing: f})
			}
		}
	}
	return out
}

// BruteCosts relaxes every edge of the state graph until nothing changes
// (Bellman–Ford), giving the true minimal cost of every reachable state from
// (Start, facing). Missing keys mean unreachable.
func BruteCosts(m *maze.Maze, facing maze.Facing) map[dijkstra.State]int64 {
	dist := map[dijkstra.State]int64{{Pos: m.Start(), Facing: facing}: 0}
	states := allStates(m)
	for changed := true; changed; {
		changed = false
		for _, s := range states {
			d, ok := dist[s]
			if !ok {
				continue
			}
			to, cost := moves(m, s)
			for i, t := range to {
				if old, ok := dist[t]; !ok || d+cost[i] < old {
					dist[t] = d + cost[i]
					changed = true
				}
			}
		}
	}
	return dist
}

// BruteOptimal returns the best End cost and the sorted cells lying on any
// optimal route, found as the cells of states s with
// forward(s) + remaining(s) == best. ok is false when End is unreachable.
func BruteOptimal(m *maze.Maze) (best int64, cells []maze.Coord, ok bool) {
	fwd := BruteCosts(m, dijkstra.DefaultFacing)
	best = unreached
	for _, f := range maze.Facings {
		if d, ok := fwd[dijkstra.State{Pos: m.End(), Facing: f}]; ok && d < best {
			best = d
		}
	}
	if best == unreached {
		return best, nil, false
	}

	// remaining[s] = cheapest cost from s to any End state.
	states := allStates(m)
	rem := make(map[dijkstra.State]int64)
	for _, f := range maze.Facings {
		rem[dijkstra.State{Pos: m.End(), Facing: f}] = 0
	}
	for changed := true; changed; {
		changed = false
		for _, s := range states {
			to, cost := moves(m, s)
			for i, t := range to {
				r, ok := rem[t]
				if !ok {
					continue
				}
				if old, ok := rem[s]; !ok || r+cost[i] < old {
					rem[s] = r + cost[i]
					changed = true
				}
			}
		}
	}

	seen := make(map[maze.Coord]bool)
	for _, s := range states {
		d, ok1 := fwd[s]
		r, ok2 := rem[s]
		if ok1 && ok2 && d+r == best && !seen[s.Pos] {
			seen[s.Pos] = true
			cells = append(cells, s.Pos)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return best, cells, true
}
