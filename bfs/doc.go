// Package bfs recovers minimum-cost routes from a dijkstra.Result by walking
// predecessor sets backward from the terminal states.
//
// What:
//
//   - Backtrack: reverse breadth-first traversal from a set of target states,
//     visiting each state once, returning the visit order and the distinct
//     cells touched. Applied to the End states at the optimum, Cells is the set
//     of cells lying on at least one optimal route.
//   - CountPaths: number of distinct optimal state sequences, computed with
//     one memoized pass in increasing cost order.
//   - Paths: enumerate those sequences as coordinate lists (in-place turns
//     collapse), sharing the walk of common suffixes.
//
// Complexity:
//
//   - Backtrack:  O(S + P), S = visited states, P = predecessor links.
//   - CountPaths: O(S log S + P).
//   - Paths:      O(S + total output length).
//
// Errors:
//
//   - ErrNilResult:       nil *dijkstra.Result.
//   - ErrUntracked:       the search ran without dijkstra.WithPredecessors.
//   - ErrTargetUnreached: a target state has no cost.
//   - ErrOptionViolation: invalid option.
//   - ErrTooManyPaths:    Paths would exceed WithMaxPaths.
package bfs
