// Package dijkstra_test contains unit tests for the maze-state Dijkstra search.
// These tests validate costs against an exhaustive relaxation oracle, tie
// bookkeeping, options, and edge cases such as walled-in starts.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/internal/fixture"
	"github.com/katalvlaran/reindeer/maze"
)

func mustParse(t testing.TB, s string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(s)
	require.NoError(t, err)
	return m
}

func bestEnd(res *dijkstra.Result) int64 {
	best, _ := res.BestAt(res.Maze().End())
	return best
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilMaze(t *testing.T) {
	_, err := dijkstra.Search(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilMaze)
}

func TestSearch_BadOptions(t *testing.T) {
	m := mustParse(t, "S.E")
	_, err := dijkstra.Search(m, dijkstra.WithMaxExpansions(-1))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Search(m, dijkstra.WithInitialFacing(maze.Facing(7)))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. State space
// ------------------------------------------------------------------------

// TestTransitions_WallAhead checks that Advance is dropped in front of a wall
// and at the grid edge, while both turns are always offered.
func TestTransitions_WallAhead(t *testing.T) {
	m := mustParse(t, "S#\n.E")

	got := dijkstra.Transitions(m, dijkstra.State{Pos: m.Start(), Facing: maze.Right}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, dijkstra.TurnLeft, got[0].Move)
	assert.Equal(t, dijkstra.State{Pos: m.Start(), Facing: maze.Up}, got[0].To)
	assert.Equal(t, dijkstra.TurnCost, got[0].Cost)
	assert.Equal(t, dijkstra.TurnRight, got[1].Move)
	assert.Equal(t, dijkstra.State{Pos: m.Start(), Facing: maze.Down}, got[1].To)

	got = dijkstra.Transitions(m, dijkstra.State{Pos: m.Start(), Facing: maze.Up}, nil)
	assert.Len(t, got, 2, "edge ahead")

	got = dijkstra.Transitions(m, dijkstra.State{Pos: m.Start(), Facing: maze.Down}, nil)
	require.Len(t, got, 3)
	assert.Equal(t, dijkstra.Transition{
		Move: dijkstra.Advance,
		To:   dijkstra.State{Pos: maze.Coord{Row: 1, Col: 0}, Facing: maze.Down},
		Cost: dijkstra.StepCost,
	}, got[0])
}

// ------------------------------------------------------------------------
// 3. Costs
// ------------------------------------------------------------------------

func TestSearch_Fixtures(t *testing.T) {
	for _, fx := range fixture.All {
		t.Run(fx.Name, func(t *testing.T) {
			res, err := dijkstra.Search(mustParse(t, fx.Text))
			require.NoError(t, err)
			assert.Equal(t, fx.Cost, bestEnd(res))
			assert.False(t, res.Tracked())
		})
	}
}

// TestSearch_StraightLine: no turns needed, cost is the Manhattan distance.
func TestSearch_StraightLine(t *testing.T) {
	res, err := dijkstra.Search(mustParse(t, "#######\n#S...E#\n#######"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), bestEnd(res))
}

// TestSearch_InitialFacing checks the Right convention and its override.
func TestSearch_InitialFacing(t *testing.T) {
	m := mustParse(t, "S.E")
	cases := map[maze.Facing]int64{
		maze.Right: 2,
		maze.Up:    1002,
		maze.Down:  1002,
		maze.Left:  2002,
	}
	for f, want := range cases {
		res, err := dijkstra.Search(m, dijkstra.WithInitialFacing(f))
		require.NoError(t, err)
		assert.Equal(t, want, bestEnd(res), "initial facing %v", f)
		assert.Equal(t, dijkstra.State{Pos: m.Start(), Facing: f}, res.Start())
	}
}

// TestSearch_WalledIn: only the four in-place facings at Start are reachable.
func TestSearch_WalledIn(t *testing.T) {
	m := mustParse(t, fixture.WalledIn)
	res, err := dijkstra.Search(m, dijkstra.WithPredecessors())
	require.NoError(t, err)

	best, states := res.BestAt(m.End())
	assert.Equal(t, dijkstra.Unreached, best)
	assert.Nil(t, states)
	assert.Equal(t, 4, res.Stats.Expanded)
	assert.Equal(t, int64(2000), res.Cost(dijkstra.State{Pos: m.Start(), Facing: maze.Left}))
}

// TestSearch_MatchesBruteForce compares every state cost against an exhaustive
// Bellman–Ford relaxation on random 6×6 grids.
func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w, h := 2+rng.Intn(5), 2+rng.Intn(5)
		m := fixture.RandomMaze(rng, w, h, 0.3)
		want := fixture.BruteCosts(m, dijkstra.DefaultFacing)

		res, err := dijkstra.Search(m, dijkstra.WithPredecessors())
		require.NoError(t, err)

		got := make(map[dijkstra.State]int64)
		for hd := 0; hd < res.Len(); hd++ {
			if c := res.CostAt(hd); c != dijkstra.Unreached {
				got[res.StateAt(hd)] = c
				assert.True(t, res.Finalized(res.StateAt(hd)))
			}
		}
		if !assert.Equal(t, want, got) {
			t.Fatalf("maze %d:\n%v\ndiff: %v", i, m, pretty.Diff(want, got))
		}
	}
}

// ------------------------------------------------------------------------
// 4. Predecessor sets
// ------------------------------------------------------------------------

// TestSearch_SymmetricTies: two mirror-image routes reach End, the top one
// facing Down and the bottom one facing Up, both at cost 3006.
//
//	#######
//	#.....#
//	#S###E#
//	#.....#
//	#######
func TestSearch_SymmetricTies(t *testing.T) {
	m := mustParse(t, fixture.Symmetric)
	res, err := dijkstra.Search(m, dijkstra.WithPredecessors())
	require.NoError(t, err)

	best, states := res.BestAt(m.End())
	assert.Equal(t, int64(3006), best)
	assert.Equal(t, []dijkstra.State{
		{Pos: m.End(), Facing: maze.Up},
		{Pos: m.End(), Facing: maze.Down},
	}, states)

	// Facing Left at End is reached by turning from either arrival: a tie.
	left := dijkstra.State{Pos: m.End(), Facing: maze.Left}
	assert.Equal(t, int64(4006), res.Cost(left))
	assert.ElementsMatch(t, states, res.Predecessors(left))

	assert.Nil(t, res.Predecessors(res.Start()))
}

// TestSearch_TiesDoNotRepush checks that every expanded state was finalized
// exactly once, and that pushes equal initial + strict improvements.
func TestSearch_TiesDoNotRepush(t *testing.T) {
	res, err := dijkstra.Search(mustParse(t, fixture.Small.Text), dijkstra.WithPredecessors())
	require.NoError(t, err)
	st := res.Stats
	assert.Equal(t, st.Improved+1, st.Pushed)
	assert.Equal(t, st.Popped, st.Expanded+st.Stale)
	assert.Positive(t, st.Ties)
}

// TestSearch_CostOnlyKeepsNoPredecessors: untracked runs report the same cost
// but no predecessor data.
func TestSearch_CostOnlyKeepsNoPredecessors(t *testing.T) {
	m := mustParse(t, fixture.Symmetric)
	res, err := dijkstra.Search(m)
	require.NoError(t, err)
	assert.Equal(t, int64(3006), bestEnd(res))
	assert.Nil(t, res.Predecessors(dijkstra.State{Pos: m.End(), Facing: maze.Up}))
	assert.Nil(t, res.PredecessorHandles(0))
}

// ------------------------------------------------------------------------
// 5. Hooks, early stop, limits
// ------------------------------------------------------------------------

// TestSearch_MonotoneRelax records every cost-table write and checks that a
// state's successive costs strictly decrease.
func TestSearch_MonotoneRelax(t *testing.T) {
	last := make(map[dijkstra.State]int64)
	writes := 0
	hook := func(s dijkstra.State, cost int64) {
		writes++
		if prev, ok := last[s]; ok {
			assert.Less(t, cost, prev, "cost of %v rose", s)
		}
		last[s] = cost
	}
	res, err := dijkstra.Search(mustParse(t, fixture.Large.Text), dijkstra.WithOnRelax(hook))
	require.NoError(t, err)
	assert.Equal(t, res.Stats.Improved+1, writes)
	for s, c := range last {
		assert.Equal(t, res.Cost(s), c)
	}
}

// TestSearch_StopAtEnd must agree with the full run on the End cost and on
// End predecessor sets while expanding no more states.
func TestSearch_StopAtEnd(t *testing.T) {
	for _, fx := range fixture.All {
		m := mustParse(t, fx.Text)
		full, err := dijkstra.Search(m, dijkstra.WithPredecessors())
		require.NoError(t, err)
		early, err := dijkstra.Search(m, dijkstra.WithPredecessors(), dijkstra.WithStopAtEnd())
		require.NoError(t, err)

		best, states := early.BestAt(m.End())
		assert.Equal(t, fx.Cost, best, fx.Name)
		for _, s := range states {
			assert.ElementsMatch(t, full.Predecessors(s), early.Predecessors(s), "%s %v", fx.Name, s)
		}
		assert.LessOrEqual(t, early.Stats.Expanded, full.Stats.Expanded)
	}
}

func TestSearch_MaxExpansions(t *testing.T) {
	m := mustParse(t, fixture.Small.Text)
	_, err := dijkstra.Search(m, dijkstra.WithMaxExpansions(10))
	require.ErrorIs(t, err, dijkstra.ErrExpansionLimit)

	res, err := dijkstra.Search(m, dijkstra.WithMaxExpansions(m.Len()*maze.NumFacings))
	require.NoError(t, err)
	assert.Equal(t, fixture.Small.Cost, bestEnd(res))
}

// TestSearch_Idempotent: two runs on the same maze agree state by state.
func TestSearch_Idempotent(t *testing.T) {
	m := mustParse(t, fixture.Large.Text)
	a, err := dijkstra.Search(m, dijkstra.WithPredecessors())
	require.NoError(t, err)
	b, err := dijkstra.Search(m, dijkstra.WithPredecessors())
	require.NoError(t, err)
	for h := 0; h < a.Len(); h++ {
		require.Equal(t, a.CostAt(h), b.CostAt(h))
		require.Equal(t, a.PredecessorHandles(h), b.PredecessorHandles(h))
	}
	assert.Equal(t, a.Stats, b.Stats)
}
