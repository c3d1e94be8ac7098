// Package maze models the reindeer maze: an immutable rectangular grid of
// walls and open cells with exactly one Start and one End marker.
//
// What:
//
//   - Maze wraps a rectangular [][]Cell grid and records the Start and End coordinates.
//   - Neighbor answers "which cell lies one step ahead in this facing", honoring bounds.
//   - Parse / ParseString / FromLines read the `# . S E` text format.
//
// Coordinates are (Row, Col) pairs with Row growing downward.
// Facings rotate clockwise Up → Right → Down → Left.
//
// Complexity:
//
//   - NewMaze, FromLines: O(W×H) time and memory.
//   - Classify, Neighbor, Index, Coordinate: O(1).
//   - Locate: O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: root of every construction error below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character outside `# . S E`.
//   - ErrMissingStart / ErrMultipleStarts, ErrMissingEnd / ErrMultipleEnds.
//   - ErrCellNotFound / ErrAmbiguousCell: Locate matched zero or several cells.
package maze
