package dijkstra

import "github.com/katalvlaran/reindeer/maze"

// Result is the output of Search: a cost table and, when tracked, predecessor
// sets over every (coordinate, facing) state of the maze.
//
// States are also addressable by integer handle, index(pos)*4 + facing,
// in the range [0, Len()). Package bfs walks handles directly.
//
// After a search stopped early by WithStopAtEnd, costs of states that were not
// finalized are upper bounds rather than minima.
type Result struct {
	m         *maze.Maze
	cost      []int64
	finalized []bool
	preds     [][]int
	start     State

	// Stats holds counters for the run.
	Stats Stats
}

// Maze returns the maze that was searched.
func (r *Result) Maze() *maze.Maze { return r.m }

// Start returns the initial state of the search.
func (r *Result) Start() State { return r.start }

// Tracked reports whether predecessor sets were recorded.
func (r *Result) Tracked() bool { return r.preds != nil }

// Len returns the number of state handles.
func (r *Result) Len() int { return len(r.cost) }

// Handle returns the arena handle of s.
func (r *Result) Handle(s State) int {
	return r.m.Index(s.Pos)*maze.NumFacings + int(s.Facing)
}

// StateAt returns the state addressed by handle h.
func (r *Result) StateAt(h int) State {
	return State{
		Pos:    r.m.Coordinate(h / maze.NumFacings),
		Facing: maze.Facing(h % maze.NumFacings),
	}
}

// Cost returns the minimal known cost of s, or Unreached.
func (r *Result) Cost(s State) int64 {
	if !r.m.InBounds(s.Pos) || s.Facing >= maze.NumFacings {
		return Unreached
	}
	return r.cost[r.Handle(s)]
}

// CostAt returns the cost stored under handle h.
func (r *Result) CostAt(h int) int64 { return r.cost[h] }

// Reached reports whether s was reached by the search.
func (r *Result) Reached(s State) bool { return r.Cost(s) != Unreached }

// Finalized reports whether s was expanded at its minimal cost.
func (r *Result) Finalized(s State) bool {
	return r.Reached(s) && r.finalized[r.Handle(s)]
}

// Predecessors returns the states that reach s at its minimal cost.
// It returns nil for the initial state, for unreached states, and when
// predecessors were not tracked.
func (r *Result) Predecessors(s State) []State {
	if r.preds == nil || !r.Reached(s) {
		return nil
	}
	hs := r.preds[r.Handle(s)]
	if len(hs) == 0 {
		return nil
	}
	out := make([]State, len(hs))
	for i, h := range hs {
		out[i] = r.StateAt(h)
	}
	return out
}

// PredecessorHandles returns the predecessor handles of handle h.
// The slice is owned by r and must not be modified.
func (r *Result) PredecessorHandles(h int) []int {
	if r.preds == nil {
		return nil
	}
	return r.preds[h]
}

// BestAt returns the minimal cost over all facings at c, together with every
// state at c that achieves it, in facing order. It returns (Unreached, nil)
// when no facing at c was reached.
func (r *Result) BestAt(c maze.Coord) (int64, []State) {
	if !r.m.InBounds(c) {
		return Unreached, nil
	}
	best := Unreached
	var states []State
	for _, f := range maze.Facings {
		s := State{Pos: c, Facing: f}
		cost := r.cost[r.Handle(s)]
		switch {
		case cost == Unreached:
		case cost < best:
			best = cost
			states = append(states[:0], s)
		case cost == best:
			states = append(states, s)
		}
	}
	return best, states
}
