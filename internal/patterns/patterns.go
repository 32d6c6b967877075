// Package patterns holds the read-only catalog of named seed shapes.
package patterns

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// EmptyIndex selects the empty grid in an index-addressed prompt.
const EmptyIndex = -1

// Pattern is a named template placed at a fixed offset into the grid.
type Pattern struct {
	Name        string
	Description string
	Offset      core.Coord

	template [][]bool
}

// New builds a pattern, copying template so later edits by the caller do not leak in.
func New(name, description string, offset core.Coord, template [][]bool) (Pattern, error) {
	if strings.TrimSpace(name) == "" {
		return Pattern{}, errors.New("pattern name must not be empty")
	}
	if len(template) == 0 || len(template[0]) == 0 {
		return Pattern{}, errors.Errorf("pattern %q has an empty template", name)
	}
	width := len(template[0])
	cp := make([][]bool, len(template))
	for i, row := range template {
		if len(row) != width {
			return Pattern{}, errors.Errorf("pattern %q row %d has %d cells, want %d", name, i, len(row), width)
		}
		cp[i] = append([]bool(nil), row...)
	}
	return Pattern{Name: name, Description: description, Offset: offset, template: cp}, nil
}

// Size returns the template extent.
func (p Pattern) Size() core.Size {
	if len(p.template) == 0 {
		return core.Size{}
	}
	return core.Size{Rows: len(p.template), Cols: len(p.template[0])}
}

// Template returns a copy of the boolean template.
func (p Pattern) Template() [][]bool {
	out := make([][]bool, len(p.template))
	for i, row := range p.template {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Cells lists the absolute grid coordinates of every alive template cell.
func (p Pattern) Cells() []core.Coord {
	var out []core.Coord
	for r, row := range p.template {
		for c, alive := range row {
			if alive {
				out = append(out, p.Offset.Add(core.Coord{Row: r, Col: c}))
			}
		}
	}
	return out
}

// Fits reports whether the template placed at its offset lies inside size.
func (p Pattern) Fits(size core.Size) bool {
	ext := p.Size()
	return p.Offset.Row >= 0 && p.Offset.Col >= 0 &&
		p.Offset.Row+ext.Rows <= size.Rows && p.Offset.Col+ext.Cols <= size.Cols
}

// ParseTemplate converts plaintext rows into a template. 'O', '*', '#' and
// '1' are alive; '.', '0', '_' and spaces are dead. Short rows are padded
// with dead cells up to the longest row.
func ParseTemplate(rows []string) ([][]bool, error) {
	if len(rows) == 0 {
		return nil, errors.New("template has no rows")
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, errors.New("template has no columns")
	}
	out := make([][]bool, len(rows))
	for r, row := range rows {
		out[r] = make([]bool, width)
		for c, ch := range []rune(row) {
			switch ch {
			case 'O', 'o', '*', '#', '1':
				out[r][c] = true
			case '.', '0', '_', ' ':
			default:
				return nil, errors.Errorf("template row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return out, nil
}

// ParseSelection interprets a typed prompt answer against a catalog of n
// entries. It returns EmptyIndex for "-1" and ErrInvalidSelection for
// anything unparseable or outside [0,n).
func ParseSelection(input string, n int) (int, error) {
	trimmed := strings.TrimSpace(input)
	i, err := strconv.Atoi(trimmed)
	if err != nil {
		return EmptyIndex, errors.Wrapf(core.ErrInvalidSelection, "%q is not a number", trimmed)
	}
	if i == EmptyIndex {
		return EmptyIndex, nil
	}
	if i < 0 || i >= n {
		return EmptyIndex, errors.Wrapf(core.ErrInvalidSelection, "index %d outside [0,%d)", i, n)
	}
	return i, nil
}
