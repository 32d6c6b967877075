// Package render turns grid state into draw commands. It holds no simulation
// state of its own.
package render

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/life"
)

// Rect is a single draw command in screen pixels.
type Rect struct {
	X, Y, W, H int
	Color      color.RGBA
	// Outline draws a one pixel border instead of filling.
	Outline bool
}

// Frame builds the draw commands for one frame. Every living cell becomes a
// filled (size-1)x(size-1) square at (col*size, row*size) coloured by its
// transition; dead cells are left to the background. highlight, when non-nil
// and inside the grid, adds a size x size outline over that cell.
func Frame(g *core.Grid, tr life.Transitions, cellSize int, pal Palette, highlight *core.Coord) []Rect {
	if cellSize <= 0 {
		cellSize = 1
	}
	size := g.Size()
	cells := g.Cells()
	fill := cellSize - 1
	if fill < 1 {
		fill = 1
	}
	rects := make([]Rect, 0, g.Population()+1)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if cells[r*size.Cols+c] != core.Alive {
				continue
			}
			at := core.Coord{Row: r, Col: c}
			rects = append(rects, Rect{
				X: c * cellSize, Y: r * cellSize, W: fill, H: fill,
				Color: pal.For(tr.At(at)),
			})
		}
	}
	if highlight != nil && size.Contains(*highlight) {
		rects = append(rects, Rect{
			X: highlight.Col * cellSize, Y: highlight.Row * cellSize, W: cellSize, H: cellSize,
			Color: pal.Highlight, Outline: true,
		})
	}
	return rects
}

// CellAt maps a pointer position in screen pixels to the cell under it.
func CellAt(x, y, cellSize int) core.Coord {
	if cellSize <= 0 {
		cellSize = 1
	}
	return core.Coord{Row: floorDiv(y, cellSize), Col: floorDiv(x, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
