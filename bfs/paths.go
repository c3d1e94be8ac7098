package bfs

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

// CountPaths returns the number of distinct state sequences from the initial
// state to any of targets along predecessor links. Counts saturate at
// math.MaxUint64. Routes that differ only in the direction of a 180° turn
// count twice; CountRoutes counts them once.
//
// Every predecessor costs strictly less than its successor, so visiting the
// backtracked states in increasing cost order sees each predecessor's count
// before it is needed.
func CountPaths(res *dijkstra.Result, targets []dijkstra.State) (uint64, error) {
	counts, err := countPaths(res, targets)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, t := range targets {
		total = satAdd(total, counts[res.Handle(t)])
	}
	return total, nil
}

func countPaths(res *dijkstra.Result, targets []dijkstra.State) (map[int]uint64, error) {
	back, err := Backtrack(res, targets)
	if err != nil {
		return nil, err
	}
	hs := make([]int, len(back.Order))
	for i, s := range back.Order {
		hs[i] = res.Handle(s)
	}
	sort.Slice(hs, func(i, j int) bool { return res.CostAt(hs[i]) < res.CostAt(hs[j]) })

	counts := make(map[int]uint64, len(hs))
	for _, h := range hs {
		preds := res.PredecessorHandles(h)
		if len(preds) == 0 {
			counts[h] = 1
			continue
		}
		var c uint64
		for _, p := range preds {
			c = satAdd(c, counts[p])
		}
		counts[h] = c
	}
	return counts, nil
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// CountRoutes returns the number of distinct coordinate sequences from Start
// to the cells of targets along predecessor links, the number of routes Paths
// would return. Counts saturate at math.MaxUint64.
//
// Each state's count is the sum over the Advance predecessors of its in-place
// turn closure, so it is computed once per state in increasing cost order.
func CountRoutes(res *dijkstra.Result, targets []dijkstra.State) (uint64, error) {
	if _, err := prepare(res, targets, nil); err != nil {
		return 0, err
	}
	ri := newRouteIndex(res)
	counts, err := ri.countRoutes(targets)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, g := range ri.groupByCell(targets) {
		total = satAdd(total, ri.routes(ri.collect(g), counts))
	}
	return total, nil
}

// sources describes how routes arrive at one cell. The turn closure of a set
// of states is those states plus every state at the same cell that turns into
// them. origin is set when the initial state is in the closure; steps lists
// the Advance predecessors of the closure, one per arrival facing.
type sources struct {
	origin bool
	steps  []int
}

// routeIndex memoizes the sources of single states.
type routeIndex struct {
	res   *dijkstra.Result
	start int
	memo  map[int]sources
}

func newRouteIndex(res *dijkstra.Result) *routeIndex {
	return &routeIndex{
		res:   res,
		start: res.Handle(res.Start()),
		memo:  make(map[int]sources),
	}
}

// of returns the memoized sources of handle h.
func (ri *routeIndex) of(h int) sources {
	if src, ok := ri.memo[h]; ok {
		return src
	}
	src := ri.collect([]int{h})
	ri.memo[h] = src
	return src
}

// collect builds the sources of the turn closure of seeds, which must share a cell.
// Each closure state is taken once, so left-left and right-right U-turns merge.
func (ri *routeIndex) collect(seeds []int) sources {
	var src sources
	closure := make([]int, 0, maze.NumFacings)
	add := func(h int) {
		for _, c := range closure {
			if c == h {
				return
			}
		}
		closure = append(closure, h)
	}
	for _, h := range seeds {
		add(h)
	}
	for i := 0; i < len(closure); i++ {
		x := closure[i]
		if x == ri.start {
			src.origin = true
		}
		pos := ri.res.StateAt(x).Pos
		for _, p := range ri.res.PredecessorHandles(x) {
			if ri.res.StateAt(p).Pos == pos {
				add(p)
			} else {
				src.steps = append(src.steps, p)
			}
		}
	}
	return src
}

// routes sums the route counts reaching src.
func (ri *routeIndex) routes(src sources, counts map[int]uint64) uint64 {
	var n uint64
	if src.origin {
		n = 1
	}
	for _, p := range src.steps {
		n = satAdd(n, counts[p])
	}
	return n
}

// countRoutes fills per-state route counts for every state behind targets.
// A closure state costs at most as much as the state it turns into, and its
// Advance predecessor costs less, so cost order sees every step first.
func (ri *routeIndex) countRoutes(targets []dijkstra.State) (map[int]uint64, error) {
	back, err := Backtrack(ri.res, targets)
	if err != nil {
		return nil, err
	}
	hs := make([]int, len(back.Order))
	for i, s := range back.Order {
		hs[i] = ri.res.Handle(s)
	}
	sort.Slice(hs, func(i, j int) bool { return ri.res.CostAt(hs[i]) < ri.res.CostAt(hs[j]) })

	counts := make(map[int]uint64, len(hs))
	for _, h := range hs {
		counts[h] = ri.routes(ri.of(h), counts)
	}
	return counts, nil
}

// groupByCell splits targets into handle groups sharing a cell, in first-seen order.
func (ri *routeIndex) groupByCell(targets []dijkstra.State) [][]int {
	var groups [][]int
	at := make(map[maze.Coord]int)
	for _, t := range targets {
		i, ok := at[t.Pos]
		if !ok {
			i = len(groups)
			at[t.Pos] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], ri.res.Handle(t))
	}
	return groups
}

// Paths enumerates every distinct route from the initial state to targets as
// a coordinate sequence from Start to the target cell. In-place turns collapse
// to one coordinate, so a 180° turn made left-left or right-right is one route.
// Routes are produced in target order, then in predecessor order.
//
// Returns ErrTooManyPaths, before enumerating, when CountRoutes exceeds MaxPaths.
// The walk descends through memoized sources, one step per route cell.
func Paths(res *dijkstra.Result, targets []dijkstra.State, opts ...Option) ([][]maze.Coord, error) {
	o, err := prepare(res, targets, opts)
	if err != nil {
		return nil, err
	}
	if o.MaxPaths > 0 {
		n, err := CountRoutes(res, targets)
		if err != nil {
			return nil, err
		}
		if n > uint64(o.MaxPaths) {
			return nil, fmt.Errorf("%w: %d routes, limit %d", ErrTooManyPaths, n, o.MaxPaths)
		}
	}

	ri := newRouteIndex(res)
	var out [][]maze.Coord
	for _, g := range ri.groupByCell(targets) {
		ri.walk(ri.collect(g), res.StateAt(g[0]).Pos, nil, &out)
	}
	return out, nil
}

// walk extends the backward route back with pos and emits or descends.
func (ri *routeIndex) walk(src sources, pos maze.Coord, back []maze.Coord, out *[][]maze.Coord) {
	back = append(back, pos)
	if src.origin {
		route := make([]maze.Coord, len(back))
		for i, c := range back {
			route[len(back)-1-i] = c
		}
		*out = append(*out, route)
	}
	for _, p := range src.steps {
		ri.walk(ri.of(p), ri.res.StateAt(p).Pos, back, out)
	}
}
