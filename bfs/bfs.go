// Package bfs walks predecessor sets backward from target states,
// collecting every state and cell that lies on a minimum-cost route.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

// queueItem pairs a state handle with its backward depth.
type queueItem struct {
	handle int
	depth  int
}

// walker encapsulates mutable traversal state.
type walker struct {
	res     *dijkstra.Result
	opts    Options
	queue   []queueItem
	visited []bool
	onPath  []bool // per cell index
	out     *Result
}

// Backtrack runs a reverse breadth-first traversal over res's predecessor
// sets starting from targets. Each state is enqueued at most once, so the
// work is linear in the number of states and predecessor links regardless of
// how many routes they form.
//
// Returns ErrNilResult, ErrUntracked, ErrTargetUnreached or ErrOptionViolation
// for invalid input, or any error returned by an OnVisit hook.
func Backtrack(res *dijkstra.Result, targets []dijkstra.State, opts ...Option) (*Result, error) {
	o, err := prepare(res, targets, opts)
	if err != nil {
		return nil, err
	}

	m := res.Maze()
	w := &walker{
		res:     res,
		opts:    o,
		queue:   make([]queueItem, 0, len(targets)),
		visited: make([]bool, res.Len()),
		onPath:  make([]bool, m.Len()),
		out: &Result{
			Depth: make(map[dijkstra.State]int),
		},
	}
	for _, t := range targets {
		w.enqueue(res.Handle(t), 0)
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	// onPath is indexed row-major, so scanning it yields sorted cells.
	for i, ok := range w.onPath {
		if ok {
			w.out.Cells = append(w.out.Cells, m.Coordinate(i))
		}
	}
	return w.out, nil
}

// prepare applies options and validates the inputs shared by every entry point.
func prepare(res *dijkstra.Result, targets []dijkstra.State, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if res == nil {
		return o, ErrNilResult
	}
	if !res.Tracked() {
		return o, ErrUntracked
	}
	for _, t := range targets {
		if !res.Reached(t) {
			return o, fmt.Errorf("%w: %v", ErrTargetUnreached, t)
		}
	}
	return o, nil
}

// enqueue marks h visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(h, d int) {
	if w.visited[h] {
		return
	}
	w.visited[h] = true
	s := w.res.StateAt(h)
	w.out.Depth[s] = d
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem{handle: h, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	m := w.res.Maze()
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		s := w.res.StateAt(item.handle)
		w.out.Order = append(w.out.Order, s)
		w.onPath[m.Index(s.Pos)] = true
		if err := w.opts.OnVisit(s, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", s, err)
		}

		for _, p := range w.res.PredecessorHandles(item.handle) {
			w.enqueue(p, item.depth+1)
		}
	}
	return nil
}

// OptimalTargets returns the best End cost of res and every End state
// achieving it. ok is false when End was not reached.
func OptimalTargets(res *dijkstra.Result) (best int64, targets []dijkstra.State, ok bool) {
	best, targets = res.BestAt(res.Maze().End())
	return best, targets, best != dijkstra.Unreached
}

// OptimalCells is Backtrack from the optimal End states, returning only Cells.
// It returns ErrTargetUnreached when End was not reached.
func OptimalCells(res *dijkstra.Result, opts ...Option) ([]maze.Coord, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	_, targets, ok := OptimalTargets(res)
	if !ok {
		return nil, fmt.Errorf("%w: end %v", ErrTargetUnreached, res.Maze().End())
	}
	out, err := Backtrack(res, targets, opts...)
	if err != nil {
		return nil, err
	}
	return out.Cells, nil
}
