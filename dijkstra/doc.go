// Package dijkstra runs Dijkstra's shortest-path algorithm over the state
// space of a reindeer maze, where a vertex is a (coordinate, facing) pair.
//
// Overview:
//
//   - From state (c, f) three moves exist: Advance to the neighbor of c along f
//     (cost StepCost, legal unless the neighbor is off-grid or a wall), and
//     TurnLeft / TurnRight in place (cost TurnCost each, always legal).
//   - The search starts at (Start, Right) with cost 0 and processes states in
//     increasing cost order using a min-heap.
//   - With WithPredecessors, every state keeps the set of predecessor states that
//     reach it at its minimal cost, so that all co-optimal routes can be recovered
//     by package bfs.
//
// Expansion rule for a state s popped at cost d:
//
//   - If s is already finalized, the entry is stale; skip it.
//   - Otherwise finalize s and relax each legal transition s → t with cost w:
//     d+w < cost[t]  → cost[t] = d+w, pred[t] = {s}, push t;
//     d+w == cost[t] → pred[t] = pred[t] ∪ {s}, no push;
//     d+w > cost[t]  → discard.
//
// Storage:
//
//   - All per-state data lives in dense slices indexed by a state handle
//     index(c)*4 + f, so the arena is W×H×4 entries and no state points at another.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4 states, each with at most 3 outgoing edges.
//   - Space: O(S).
//
// Errors (sentinel):
//
//   - ErrNilMaze           if the maze pointer is nil.
//   - ErrOptionViolation   if an option received an invalid argument.
//   - ErrExpansionLimit    if WithMaxExpansions was exceeded.
//
// Thread safety:
//
//   - A Search call owns all of its state; the Maze is only read.
//     Concurrent Search calls on one Maze are safe.
package dijkstra
