// Package dijkstra defines the state space, options and results
// of the reindeer-maze search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/reindeer/maze"
)

// Sentinel errors returned by Search.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to Search.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrOptionViolation indicates an option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrExpansionLimit indicates the search expanded more states than
	// WithMaxExpansions allowed.
	ErrExpansionLimit = errors.New("dijkstra: expansion limit exceeded")
)

// Move costs.
const (
	StepCost int64 = 1
	TurnCost int64 = 1000
)

// Unreached is the cost reported for a state the search never reached.
const Unreached int64 = math.MaxInt64

// DefaultFacing is the facing of the initial state.
const DefaultFacing = maze.Right

// Move names one of the three transitions out of a state.
type Move uint8

const (
	Advance Move = iota
	TurnLeft
	TurnRight
)

func (m Move) String() string {
	switch m {
	case Advance:
		return "advance"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// State is a vertex of the search graph: a position and a facing.
type State struct {
	Pos    maze.Coord
	Facing maze.Facing
}

func (s State) String() string {
	return fmt.Sprintf("%v%v", s.Pos, s.Facing)
}

// Transition is one legal edge out of a state.
type Transition struct {
	Move Move
	To   State
	Cost int64
}

// Transitions appends to buf the legal transitions out of s on m and returns
// the extended slice. Advance is omitted when the cell ahead is off-grid or a wall.
func Transitions(m *maze.Maze, s State, buf []Transition) []Transition {
	if next, ok := m.Neighbor(s.Pos, s.Facing); ok && m.Classify(next).Passable() {
		buf = append(buf, Transition{Move: Advance, To: State{Pos: next, Facing: s.Facing}, Cost: StepCost})
	}
	buf = append(buf,
		Transition{Move: TurnLeft, To: State{Pos: s.Pos, Facing: s.Facing.TurnLeft()}, Cost: TurnCost},
		Transition{Move: TurnRight, To: State{Pos: s.Pos, Facing: s.Facing.TurnRight()}, Cost: TurnCost},
	)
	return buf
}

// Options configures Search.
//
// Predecessors  – if true, keep predecessor sets for path reconstruction.
// Facing        – facing of the initial state at Start. Default Right.
// StopAtEnd     – stop once no frontier entry can still reach End at the best cost.
// MaxExpansions – cap on finalized states; 0 means no cap.
// OnRelax       – called on every cost-table write with the state and its new cost.
type Options struct {
	Predecessors  bool
	Facing        maze.Facing
	StopAtEnd     bool
	MaxExpansions int
	OnRelax       func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - Predecessors:  false (cost-only bookkeeping).
//   - Facing:        DefaultFacing (Right).
//   - StopAtEnd:     false (run until the frontier is empty).
//   - MaxExpansions: 0 (no cap).
//   - OnRelax:       no-op.
func DefaultOptions() Options {
	return Options{
		Facing:  DefaultFacing,
		OnRelax: func(State, int64) {},
	}
}

// WithPredecessors enables predecessor-set tracking.
func WithPredecessors() Option {
	return func(o *Options) {
		o.Predecessors = true
	}
}

// WithInitialFacing sets the facing of the initial state.
func WithInitialFacing(f maze.Facing) Option {
	return func(o *Options) {
		if f >= maze.NumFacings {
			o.err = fmt.Errorf("%w: facing %d out of range", ErrOptionViolation, f)
			return
		}
		o.Facing = f
	}
}

// WithStopAtEnd ends the search as soon as the cheapest frontier entry costs
// more than the best known End cost. Every End state at the optimum and its
// predecessor set are complete at that point.
func WithStopAtEnd() Option {
	return func(o *Options) {
		o.StopAtEnd = true
	}
}

// WithMaxExpansions aborts with ErrExpansionLimit after n finalized states.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnRelax registers a callback run whenever a state's cost is lowered.
func WithOnRelax(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Stats counts the work done by one Search.
type Stats struct {
	Pushed   int // frontier pushes, including the initial state
	Popped   int // frontier pops
	Stale    int // pops skipped because the state was already finalized
	Expanded int // states finalized and relaxed
	Improved int // strict cost improvements, excluding the initial state
	Ties     int // equal-cost arrivals recorded as extra predecessors
}
