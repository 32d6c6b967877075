package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid(Size{Rows: 4, Cols: 7})
	require.Len(t, g.Cells(), 28)
	for r := 0; r < 4; r++ {
		for c := 0; c < 7; c++ {
			assert.Equal(t, Dead, g.Get(Coord{Row: r, Col: c}))
		}
	}
	assert.Zero(t, g.Population())
}

func TestSetThenGet(t *testing.T) {
	g := NewGrid(Size{Rows: 3, Cols: 3})
	at := Coord{Row: 1, Col: 2}

	require.NoError(t, g.Set(at, Alive))
	assert.Equal(t, Alive, g.Get(at))
	assert.Equal(t, 1, g.Population())

	require.NoError(t, g.Set(at, Dead))
	assert.Equal(t, Dead, g.Get(at))
}

func TestSetOutOfBoundsLeavesGridUntouched(t *testing.T) {
	g := NewGrid(Size{Rows: 3, Cols: 3})
	require.NoError(t, g.Set(Coord{Row: 0, Col: 0}, Alive))
	before := g.Clone()

	for _, c := range []Coord{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}, {Row: 0, Col: -5}} {
		err := g.Set(c, Alive)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "cell %s", c)
	}
	assert.True(t, before.Equal(g))
	assert.Equal(t, Dead, g.Get(Coord{Row: -1, Col: -1}))
}

func TestSetNormalisesState(t *testing.T) {
	g := NewGrid(Size{Rows: 1, Cols: 1})
	require.NoError(t, g.Set(Coord{}, State(7)))
	assert.Equal(t, Alive, g.Get(Coord{}))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(Size{Rows: 2, Cols: 2})
	c := g.Clone()
	require.NoError(t, c.Set(Coord{Row: 1, Col: 1}, Alive))
	assert.False(t, g.Equal(c))
	assert.Equal(t, Dead, g.Get(Coord{Row: 1, Col: 1}))
}

func TestGridString(t *testing.T) {
	g := NewGrid(Size{Rows: 2, Cols: 3})
	require.NoError(t, g.Set(Coord{Row: 0, Col: 1}, Alive))
	require.NoError(t, g.Set(Coord{Row: 1, Col: 2}, Alive))
	assert.Equal(t, ".O.\n..O\n", g.String())
}

func TestFillRandomDeterministic(t *testing.T) {
	size := Size{Rows: 16, Cols: 16}
	a := NewGrid(size)
	b := NewGrid(size)
	FillRandom(NewRNG(42), a, 0.3)
	FillRandom(NewRNG(42), b, 0.3)
	assert.True(t, a.Equal(b))
	assert.NotZero(t, a.Population())

	FillRandom(NewRNG(42), a, 0)
	assert.Zero(t, a.Population())
	FillRandom(NewRNG(42), a, 1)
	assert.Equal(t, size.Cells(), a.Population())
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Playback", Params: []Parameter{{Key: "state", Label: "State", Value: "paused"}}},
	}}
	p, ok := snap.Lookup("state")
	require.True(t, ok)
	assert.Equal(t, "paused", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}
