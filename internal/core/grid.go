package core

import "github.com/pkg/errors"

// Grid stores a 2D grid of cell states in row-major order. Its dimensions are
// fixed at construction.
type Grid struct {
	size Size
	data []State
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(size Size) *Grid {
	if size.Rows <= 0 {
		size.Rows = 1
	}
	if size.Cols <= 0 {
		size.Cols = 1
	}
	return &Grid{size: size, data: make([]State, size.Cells())}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []State { return g.data }

// Index returns the linear slice index for c. c must be in bounds.
func (g *Grid) Index(c Coord) int { return c.Row*g.size.Cols + c.Col }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coord) bool { return g.size.Contains(c) }

// Get returns the state at c. Coordinates outside the grid read as Dead.
func (g *Grid) Get(c Coord) State {
	if !g.InBounds(c) {
		return Dead
	}
	return g.data[g.Index(c)]
}

// Set writes s at c. Out-of-bounds writes leave the grid untouched.
func (g *Grid) Set(c Coord, s State) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "cell %s outside %s grid", c, g.size)
	}
	if s != Dead {
		s = Alive
	}
	g.data[g.Index(c)] = s
	return nil
}

// Alive reports whether the cell at c is populated.
func (g *Grid) Alive(c Coord) bool { return g.Get(c) == Alive }

// Population counts the living cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, data: make([]State, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids share dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// String renders the grid with 'O' for alive and '.' for dead, one row per line.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.size.Cells()+g.size.Rows)
	for r := 0; r < g.size.Rows; r++ {
		for c := 0; c < g.size.Cols; c++ {
			if g.data[r*g.size.Cols+c] == Alive {
				buf = append(buf, 'O')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
