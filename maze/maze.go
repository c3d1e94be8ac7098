package maze

import "fmt"

// NewMaze constructs a Maze from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and one of the Start/End
// marker errors unless exactly one Start and one End are present.
// Algorithmic complexity: O(W×H) time and memory.
func NewMaze(cells [][]Cell) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	m := &Maze{
		Width:  w,
		Height: h,
		cells:  make([]Cell, 0, w*h),
	}
	for _, row := range cells {
		m.cells = append(m.cells, row...)
	}

	var err error
	if m.start, err = m.Locate(isCell(Start)); err != nil {
		return nil, markerError(err, ErrMissingStart, ErrMultipleStarts)
	}
	if m.end, err = m.Locate(isCell(End)); err != nil {
		return nil, markerError(err, ErrMissingEnd, ErrMultipleEnds)
	}

	return m, nil
}

func isCell(want Cell) func(Cell) bool {
	return func(c Cell) bool { return c == want }
}

// markerError translates a Locate failure into the matching construction error.
func markerError(err, missing, multiple error) error {
	if err == ErrCellNotFound {
		return missing
	}
	return fmt.Errorf("%w (%v)", multiple, err)
}

// Start returns the coordinate of the Start marker.
func (m *Maze) Start() Coord { return m.start }

// End returns the coordinate of the End marker.
func (m *Maze) End() Coord { return m.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (m *Maze) Index(c Coord) int {
	return c.Row*m.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) Coord {
	return Coord{Row: idx / m.Width, Col: idx % m.Width}
}

// Len returns the number of cells, Width×Height.
func (m *Maze) Len() int { return len(m.cells) }

// Classify returns the cell at c. It panics if c is out of bounds.
func (m *Maze) Classify(c Coord) Cell {
	if !m.InBounds(c) {
		panic(fmt.Sprintf("maze: coordinate %v out of bounds %dx%d", c, m.Width, m.Height))
	}
	return m.cells[m.Index(c)]
}

// Neighbor returns the coordinate one step from c along f.
// ok is false at the grid edge. Walls are still neighbors; use Classify.
func (m *Maze) Neighbor(c Coord, f Facing) (n Coord, ok bool) {
	dr, dc := f.Delta()
	n = Coord{Row: c.Row + dr, Col: c.Col + dc}
	if !m.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Locate returns the unique coordinate whose cell satisfies pred.
// Returns ErrCellNotFound if none match and ErrAmbiguousCell if several do.
// Complexity: O(W×H).
func (m *Maze) Locate(pred func(Cell) bool) (Coord, error) {
	found := -1
	for i, c := range m.cells {
		if !pred(c) {
			continue
		}
		if found >= 0 {
			return Coord{}, fmt.Errorf("%w: %v and %v", ErrAmbiguousCell, m.Coordinate(found), m.Coordinate(i))
		}
		found = i
	}
	if found < 0 {
		return Coord{}, ErrCellNotFound
	}
	return m.Coordinate(found), nil
}

// Rows returns a deep copy of the grid as a 2D slice.
func (m *Maze) Rows() [][]Cell {
	rows := make([][]Cell, m.Height)
	for y := range rows {
		rows[y] = make([]Cell, m.Width)
		copy(rows[y], m.cells[y*m.Width:(y+1)*m.Width])
	}
	return rows
}

// String renders the maze back into its `# . S E` text form.
func (m *Maze) String() string {
	buf := make([]byte, 0, (m.Width+1)*m.Height)
	for i, c := range m.cells {
		if i > 0 && i%m.Width == 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, c.Byte())
	}
	return string(buf)
}
