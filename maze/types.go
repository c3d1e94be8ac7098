package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and lookup.
var (
	// ErrMalformedGrid is wrapped by every error that rejects an input grid.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrInvalidCell indicates a character that is not one of `# . S E`.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell", ErrMalformedGrid)
	// ErrMissingStart indicates the grid has no Start marker.
	ErrMissingStart = fmt.Errorf("%w: no start marker", ErrMalformedGrid)
	// ErrMultipleStarts indicates more than one Start marker.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start marker", ErrMalformedGrid)
	// ErrMissingEnd indicates the grid has no End marker.
	ErrMissingEnd = fmt.Errorf("%w: no end marker", ErrMalformedGrid)
	// ErrMultipleEnds indicates more than one End marker.
	ErrMultipleEnds = fmt.Errorf("%w: more than one end marker", ErrMalformedGrid)

	// ErrCellNotFound is returned by Locate when no cell matches.
	ErrCellNotFound = errors.New("maze: no cell matches")
	// ErrAmbiguousCell is returned by Locate when several cells match.
	ErrAmbiguousCell = errors.New("maze: more than one cell matches")
)

// Cell classifies a single grid square.
type Cell uint8

const (
	// Wall blocks movement.
	Wall Cell = iota
	// Open is free floor.
	Open
	// Start is the single starting cell; open for movement.
	Start
	// End is the single goal cell; open for movement.
	End
)

// ParseCell maps an input byte to its Cell.
func ParseCell(b byte) (Cell, bool) {
	switch b {
	case '#':
		return Wall, true
	case '.':
		return Open, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	}
	return Wall, false
}

// Byte returns the input character for c.
func (c Cell) Byte() byte {
	switch c {
	case Open:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '#'
	}
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case End:
		return "End"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Passable reports whether movement may enter c.
func (c Cell) Passable() bool { return c != Wall }

// Coord is a (Row, Col) position in the grid.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Facing is one of the four orthogonal directions.
// Values are ordered clockwise so rotations are modular arithmetic.
type Facing uint8

const (
	Up Facing = iota
	Right
	Down
	Left
)

// NumFacings is the number of distinct Facing values.
const NumFacings = 4

// Facings lists every facing in clockwise order.
var Facings = [NumFacings]Facing{Up, Right, Down, Left}

// deltas holds (dRow, dCol) per Facing.
var deltas = [NumFacings][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// TurnRight rotates f 90° clockwise.
func (f Facing) TurnRight() Facing { return (f + 1) % NumFacings }

// TurnLeft rotates f 90° counter-clockwise.
func (f Facing) TurnLeft() Facing { return (f + NumFacings - 1) % NumFacings }

// Opposite rotates f by 180°.
func (f Facing) Opposite() Facing { return (f + 2) % NumFacings }

// Delta returns the row and column step of one move along f.
func (f Facing) Delta() (dRow, dCol int) {
	d := deltas[f%NumFacings]
	return d[0], d[1]
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// Maze is an immutable rectangular grid with one Start and one End.
// Cells are stored row-major; use Index and Coordinate to convert.
type Maze struct {
	Width, Height int
	cells         []Cell
	start, end    Coord
}
