package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze in `# . S E` text form, one row per line.
// Surrounding whitespace on each line and trailing blank lines are ignored.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading input: %w", err)
	}
	return FromLines(lines)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

// FromLines builds a Maze from text rows.
// Returns ErrInvalidCell, annotated with its position, for unknown characters.
func FromLines(lines []string) (*Maze, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			c, ok := ParseCell(line[x])
			if !ok {
				return nil, fmt.Errorf("%w %q at %v", ErrInvalidCell, line[x], Coord{Row: y, Col: x})
			}
			row[x] = c
		}
		cells[y] = row
	}
	return NewMaze(cells)
}
