// Package life implements the Conway's Game of Life rule on a clamped grid.
// Cells beyond the edges count as dead; nothing wraps.
package life

import (
	"github.com/pkg/errors"

	"mad-life/internal/core"
	"mad-life/internal/patterns"
)

// Transition tags what happens to a cell between two generations.
type Transition uint8

const (
	// UnchangedDead is a dead cell that stays dead.
	UnchangedDead Transition = iota
	// Born is a dead cell that comes alive.
	Born
	// Survived is a living cell that stays alive.
	Survived
	// Died is a living cell that dies.
	Died
)

func (t Transition) String() string {
	switch t {
	case Born:
		return "born"
	case Survived:
		return "survived"
	case Died:
		return "died"
	default:
		return "unchanged-dead"
	}
}

// Transitions holds one tag per cell in the grid's row-major order.
type Transitions struct {
	size core.Size
	tags []Transition
}

// Size returns the dimensions the tags were computed for.
func (t Transitions) Size() core.Size { return t.size }

// At returns the tag for c. Coordinates outside the grid read as UnchangedDead.
func (t Transitions) At(c core.Coord) Transition {
	if !t.size.Contains(c) {
		return UnchangedDead
	}
	return t.tags[c.Row*t.size.Cols+c.Col]
}

// Count returns how many cells carry tag.
func (t Transitions) Count(tag Transition) int {
	n := 0
	for _, v := range t.tags {
		if v == tag {
			n++
		}
	}
	return n
}

// CreateGrid returns an all-dead grid, overlaid with p at its offset when p
// is non-nil. A placement that leaves the grid fails with ErrOutOfBounds and
// yields an empty grid; nothing is clipped.
func CreateGrid(size core.Size, p *patterns.Pattern) (*core.Grid, error) {
	g := core.NewGrid(size)
	if p == nil {
		return g, nil
	}
	if !p.Fits(g.Size()) {
		ext := p.Size()
		return g, errors.Wrapf(core.ErrOutOfBounds, "pattern %q (%s at %s) does not fit %s grid",
			p.Name, ext, p.Offset, g.Size())
	}
	for _, c := range p.Cells() {
		g.Cells()[g.Index(c)] = core.Alive
	}
	return g, nil
}

// Neighbors counts the living cells among the eight around c.
func Neighbors(g *core.Grid, c core.Coord) int {
	size := g.Size()
	cells := g.Cells()
	minR, maxR := max(0, c.Row-1), min(size.Rows-1, c.Row+1)
	minC, maxC := max(0, c.Col-1), min(size.Cols-1, c.Col+1)
	n := 0
	for r := minR; r <= maxR; r++ {
		for col := minC; col <= maxC; col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			if cells[r*size.Cols+col] == core.Alive {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a cell.
func Rule(state core.State, neighbors int) Transition {
	if state == core.Alive {
		if neighbors == 2 || neighbors == 3 {
			return Survived
		}
		return Died
	}
	if neighbors == 3 {
		return Born
	}
	return UnchangedDead
}

// Step computes the next generation. cur is read only; the returned grid is
// freshly allocated.
func Step(cur *core.Grid) (*core.Grid, Transitions) {
	tr := Preview(cur)
	nxt := core.NewGrid(cur.Size())
	out := nxt.Cells()
	for i, tag := range tr.tags {
		if tag == Born || tag == Survived {
			out[i] = core.Alive
		}
	}
	return nxt, tr
}

// Preview returns the tags Step would produce without building the next grid.
func Preview(cur *core.Grid) Transitions {
	size := cur.Size()
	cells := cur.Cells()
	tags := make([]Transition, len(cells))
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			idx := r*size.Cols + c
			tags[idx] = Rule(cells[idx], Neighbors(cur, core.Coord{Row: r, Col: c}))
		}
	}
	return Transitions{size: size, tags: tags}
}

// SetCell writes state at c. Out-of-bounds writes are ignored and reported.
func SetCell(g *core.Grid, c core.Coord, state core.State) error {
	return g.Set(c, state)
}

// GetCell reads the state at c.
func GetCell(g *core.Grid, c core.Coord) core.State {
	return g.Get(c)
}
