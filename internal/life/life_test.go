package life

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-life/internal/core"
	"mad-life/internal/patterns"
)

func gridOf(t *testing.T, size core.Size, alive ...core.Coord) *core.Grid {
	t.Helper()
	g := core.NewGrid(size)
	for _, c := range alive {
		require.NoError(t, g.Set(c, core.Alive))
	}
	return g
}

func pattern(t *testing.T, offset core.Coord, rows ...string) *patterns.Pattern {
	t.Helper()
	tmpl, err := patterns.ParseTemplate(rows)
	require.NoError(t, err)
	p, err := patterns.New("test", "", offset, tmpl)
	require.NoError(t, err)
	return &p
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	for _, size := range []core.Size{{Rows: 1, Cols: 1}, {Rows: 5, Cols: 5}, {Rows: 3, Cols: 17}} {
		g := core.NewGrid(size)
		next, tr := Step(g)
		assert.Zero(t, next.Population(), "size %s", size)
		assert.Equal(t, size.Cells(), tr.Count(UnchangedDead))
	}
}

func TestIsolatedCellDies(t *testing.T) {
	at := core.Coord{Row: 2, Col: 2}
	g := gridOf(t, core.Size{Rows: 5, Cols: 5}, at)

	next, tr := Step(g)
	assert.Equal(t, core.Dead, next.Get(at))
	assert.Equal(t, Died, tr.At(at))
	assert.Zero(t, next.Population())
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridOf(t, core.Size{Rows: 4, Cols: 4},
		core.Coord{Row: 1, Col: 1}, core.Coord{Row: 1, Col: 2},
		core.Coord{Row: 2, Col: 1}, core.Coord{Row: 2, Col: 2})

	once, tr := Step(g)
	assert.True(t, g.Equal(once))
	assert.Equal(t, 4, tr.Count(Survived))

	twice, _ := Step(once)
	assert.True(t, once.Equal(twice))
}

func TestBlockInCornerIsStillLife(t *testing.T) {
	g := gridOf(t, core.Size{Rows: 2, Cols: 2},
		core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 1},
		core.Coord{Row: 1, Col: 0}, core.Coord{Row: 1, Col: 1})
	next, _ := Step(g)
	assert.True(t, g.Equal(next))
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := gridOf(t, core.Size{Rows: 5, Cols: 5},
		core.Coord{Row: 2, Col: 1}, core.Coord{Row: 2, Col: 2}, core.Coord{Row: 2, Col: 3})
	vertical := gridOf(t, core.Size{Rows: 5, Cols: 5},
		core.Coord{Row: 1, Col: 2}, core.Coord{Row: 2, Col: 2}, core.Coord{Row: 3, Col: 2})

	once, tr := Step(horizontal)
	require.True(t, vertical.Equal(once), "after one step:\n%s", once)
	assert.False(t, horizontal.Equal(once))
	assert.Equal(t, Died, tr.At(core.Coord{Row: 2, Col: 1}))
	assert.Equal(t, Survived, tr.At(core.Coord{Row: 2, Col: 2}))
	assert.Equal(t, Born, tr.At(core.Coord{Row: 1, Col: 2}))

	twice, _ := Step(once)
	assert.True(t, horizontal.Equal(twice), "after two steps:\n%s", twice)
}

func TestBlinkerAgainstEdgeDoesNotWrap(t *testing.T) {
	// Along the top edge the vertical phase would need row -1.
	g := gridOf(t, core.Size{Rows: 3, Cols: 3},
		core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 1}, core.Coord{Row: 0, Col: 2})
	next, _ := Step(g)
	assert.Equal(t, ".O.\n.O.\n...\n", next.String())
}

func TestGliderTranslates(t *testing.T) {
	p := pattern(t, core.Coord{Row: 1, Col: 1}, ".O.", "..O", "OOO")
	g, err := CreateGrid(core.Size{Rows: 10, Cols: 10}, p)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		g, _ = Step(g)
	}

	moved := pattern(t, core.Coord{Row: 2, Col: 2}, ".O.", "..O", "OOO")
	want, err := CreateGrid(core.Size{Rows: 10, Cols: 10}, moved)
	require.NoError(t, err)
	assert.True(t, want.Equal(g), "got:\n%s", g)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridOf(t, core.Size{Rows: 5, Cols: 5},
		core.Coord{Row: 2, Col: 1}, core.Coord{Row: 2, Col: 2}, core.Coord{Row: 2, Col: 3})
	before := g.Clone()
	Step(g)
	Preview(g)
	assert.True(t, before.Equal(g))
}

func TestStepDeterministic(t *testing.T) {
	g := core.NewGrid(core.Size{Rows: 20, Cols: 20})
	core.FillRandom(core.NewRNG(7), g, 0.4)

	a, ta := Step(g)
	b, tb := Step(g)
	assert.True(t, a.Equal(b))
	assert.Equal(t, ta, tb)
}

func TestPreviewMatchesStep(t *testing.T) {
	g := core.NewGrid(core.Size{Rows: 12, Cols: 9})
	core.FillRandom(core.NewRNG(3), g, 0.35)
	_, tr := Step(g)
	assert.Equal(t, tr, Preview(g))
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		alive := Rule(core.Alive, n)
		dead := Rule(core.Dead, n)
		switch n {
		case 2:
			assert.Equal(t, Survived, alive)
			assert.Equal(t, UnchangedDead, dead)
		case 3:
			assert.Equal(t, Survived, alive)
			assert.Equal(t, Born, dead)
		default:
			assert.Equal(t, Died, alive, "n=%d", n)
			assert.Equal(t, UnchangedDead, dead, "n=%d", n)
		}
	}
}

func TestNeighborsClampAtEdges(t *testing.T) {
	full := core.NewGrid(core.Size{Rows: 3, Cols: 3})
	core.FillRandom(core.NewRNG(1), full, 1)

	assert.Equal(t, 3, Neighbors(full, core.Coord{Row: 0, Col: 0}))
	assert.Equal(t, 5, Neighbors(full, core.Coord{Row: 0, Col: 1}))
	assert.Equal(t, 8, Neighbors(full, core.Coord{Row: 1, Col: 1}))
	assert.Equal(t, 3, Neighbors(full, core.Coord{Row: 2, Col: 2}))
}

func TestCreateGridWithoutPatternIsEmpty(t *testing.T) {
	g, err := CreateGrid(core.Size{Rows: 6, Cols: 8}, nil)
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		for c := 0; c < 8; c++ {
			assert.Equal(t, core.Dead, GetCell(g, core.Coord{Row: r, Col: c}))
		}
	}
}

func TestCreateGridPlacesTemplateAtOffset(t *testing.T) {
	p := pattern(t, core.Coord{Row: 1, Col: 2}, "O.", ".O")
	g, err := CreateGrid(core.Size{Rows: 4, Cols: 5}, p)
	require.NoError(t, err)
	assert.Equal(t, ".....\n..O..\n...O.\n.....\n", g.String())
}

func TestCreateGridRejectsOverflow(t *testing.T) {
	p := pattern(t, core.Coord{Row: 3, Col: 3}, "OO", "OO")
	g, err := CreateGrid(core.Size{Rows: 4, Cols: 4}, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrOutOfBounds))
	assert.Zero(t, g.Population())
	assert.Equal(t, core.Size{Rows: 4, Cols: 4}, g.Size())
}

func TestSetCellGetCell(t *testing.T) {
	g := core.NewGrid(core.Size{Rows: 3, Cols: 3})
	at := core.Coord{Row: 2, Col: 0}
	require.NoError(t, SetCell(g, at, core.Alive))
	assert.Equal(t, core.Alive, GetCell(g, at))

	before := g.Clone()
	err := SetCell(g, core.Coord{Row: 3, Col: 0}, core.Alive)
	assert.True(t, errors.Is(err, core.ErrOutOfBounds))
	assert.True(t, before.Equal(g))
}

func TestTransitionsOutOfBounds(t *testing.T) {
	_, tr := Step(core.NewGrid(core.Size{Rows: 2, Cols: 2}))
	assert.Equal(t, UnchangedDead, tr.At(core.Coord{Row: 5, Col: 5}))
	assert.Equal(t, core.Size{Rows: 2, Cols: 2}, tr.Size())
}
