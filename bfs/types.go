// Package bfs provides tunable options and error definitions
// for backward traversal of predecessor sets.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/maze"
)

// Sentinel errors for backward traversal.
var (
	// ErrNilResult is returned if a nil result pointer is passed.
	ErrNilResult = errors.New("bfs: search result is nil")

	// ErrUntracked is returned when the search kept no predecessor sets.
	ErrUntracked = errors.New("bfs: search result has no predecessor sets")

	// ErrTargetUnreached is returned when a target state was never reached.
	ErrTargetUnreached = errors.New("bfs: target state not reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrTooManyPaths is returned by Paths when the route count exceeds MaxPaths.
	ErrTooManyPaths = errors.New("bfs: too many optimal paths")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize traversal.
type Options struct {
	// OnEnqueue is called when a state is first discovered,
	// with its backward depth from the nearest target.
	OnEnqueue func(s dijkstra.State, depth int)

	// OnVisit is called when a state is dequeued. If it returns an error,
	// Backtrack aborts and propagates that error.
	OnVisit func(s dijkstra.State, depth int) error

	// MaxPaths, if > 0, caps how many routes Paths may return.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no path limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(dijkstra.State, int) {},
		OnVisit:   func(dijkstra.State, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(s dijkstra.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(s dijkstra.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxPaths limits Paths to n routes.
//
//	n > 0: limit to n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// Result holds the outcome of a backward traversal:
//   - Order: states visited, in visit sequence (targets first).
//   - Depth: backward distance (in transitions) from the nearest target.
//   - Cells: distinct coordinates of visited states, sorted row-major.
type Result struct {
	Order []dijkstra.State
	Depth map[dijkstra.State]int
	Cells []maze.Coord
}
