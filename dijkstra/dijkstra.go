// Package dijkstra implements the frontier-driven search over maze states.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - A tie never re-pushes: the target is already on the frontier at that cost.
//   - Costs, finalized flags and predecessor sets live in slices indexed by state handle.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/reindeer/maze"
)

// Search computes the minimal cost from (m.Start(), Options.Facing) to every
// reachable state of m. It accepts functional options to enable predecessor
// tracking, early termination, an expansion cap and a relaxation hook.
//
// Returns:
//
//   - res: the cost table, predecessor sets (if tracked) and Stats.
//   - err: ErrNilMaze, ErrOptionViolation or ErrExpansionLimit.
//
// An unreachable End is not an error here; res.BestAt(m.End()) reports Unreached.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4
//   - Space: O(S)
func Search(m *maze.Maze, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if m == nil {
		return nil, ErrNilMaze
	}

	// 2) Allocate the arena: one slot per (cell, facing).
	n := m.Len() * maze.NumFacings
	res := &Result{
		m:         m,
		cost:      make([]int64, n),
		finalized: make([]bool, n),
		start:     State{Pos: m.Start(), Facing: cfg.Facing},
	}
	for i := range res.cost {
		res.cost[i] = Unreached
	}
	if cfg.Predecessors {
		res.preds = make([][]int, n)
	}

	// 3) Run
	r := &runner{
		res:     res,
		options: cfg,
		pq:      make(statePQ, 0, m.Len()),
		bestEnd: Unreached,
		trans:   make([]Transition, 0, 3),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	res     *Result      // arena being filled
	options Options      // configuration
	pq      statePQ      // min-heap of frontier entries
	bestEnd int64        // cheapest cost seen so far at any End state
	trans   []Transition // scratch buffer for Transitions
}

// init sets the initial state to cost 0 and pushes it onto the heap.
func (r *runner) init() {
	h := r.res.Handle(r.res.start)
	r.res.cost[h] = 0
	r.options.OnRelax(r.res.start, 0)
	heap.Init(&r.pq)
	r.push(h, 0)
}

func (r *runner) push(h int, cost int64) {
	heap.Push(&r.pq, stateItem{handle: h, cost: cost})
	r.res.Stats.Pushed++
}

// process is the core loop. It repeatedly extracts the cheapest frontier entry,
// finalizes its state and relaxes the state's transitions.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states finalized).
//   - StopAtEnd is set and the cheapest entry costs more than the best End cost.
//   - MaxExpansions is reached (ErrExpansionLimit).
func (r *runner) process() error {
	res := r.res
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(stateItem)
		res.Stats.Popped++
		h, d := item.handle, item.cost

		// 2) Check invariants, then skip stale entries.
		switch {
		case res.cost[h] == Unreached:
			panic(fmt.Sprintf("dijkstra: frontier entry %v has no cost", res.StateAt(h)))
		case d < res.cost[h]:
			panic(fmt.Sprintf("dijkstra: cost of %v rose from %d to %d", res.StateAt(h), d, res.cost[h]))
		}
		if res.finalized[h] {
			res.Stats.Stale++
			continue
		}

		// 3) Everything left on the frontier is at least d.
		if r.options.StopAtEnd && d > r.bestEnd {
			break
		}
		if r.options.MaxExpansions > 0 && res.Stats.Expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d states", ErrExpansionLimit, res.Stats.Expanded)
		}

		// 4) Finalize and relax.
		res.finalized[h] = true
		res.Stats.Expanded++
		r.relax(h, d)
	}

	return nil
}

// relax applies the expansion rule to every legal transition out of handle h,
// which has just been finalized at cost d.
func (r *runner) relax(h int, d int64) {
	res := r.res
	from := res.StateAt(h)
	end := res.m.End()
	r.trans = Transitions(res.m, from, r.trans[:0])
	for _, t := range r.trans {
		th := res.Handle(t.To)
		newCost := d + t.Cost
		switch {
		case newCost < res.cost[th]:
			res.cost[th] = newCost
			if res.preds != nil {
				res.preds[th] = append(res.preds[th][:0], h)
			}
			res.Stats.Improved++
			r.options.OnRelax(t.To, newCost)
			if t.To.Pos == end && newCost < r.bestEnd {
				r.bestEnd = newCost
			}
			r.push(th, newCost)
		case newCost == res.cost[th]:
			if res.preds != nil {
				res.preds[th] = append(res.preds[th], h)
			}
			res.Stats.Ties++
		}
	}
}

// stateItem is a frontier entry: a state handle and the cost it was pushed with.
type stateItem struct {
	handle int
	cost   int64
}

// statePQ is a min-heap of stateItem ordered by cost, then by handle so that
// equal-cost pops are deterministic.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost ascending, breaking ties by handle.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].handle < pq[j].handle
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
