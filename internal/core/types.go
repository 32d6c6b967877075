package core

import "fmt"

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the total number of cells covered by the size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Contains reports whether c lies inside [0,Rows) x [0,Cols).
func (s Size) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.Cols
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Add offsets c by d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// State is the value held by a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = 0
	// Alive marks a populated cell.
	Alive State = 1
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
