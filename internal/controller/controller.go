// Package controller turns discrete input events into grid mutations and
// playback changes. It owns the grid; callers only read it.
package controller

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/patterns"
)

// Playback is the run state of the simulation.
type Playback uint8

const (
	// Paused freezes the grid and enables editing.
	Paused Playback = iota
	// Running advances one generation per tick.
	Running
)

func (p Playback) String() string {
	if p == Running {
		return "running"
	}
	return "paused"
}

// EmptyLabel names the seed of a blank grid.
const EmptyLabel = "empty"

// Controller is the playback state machine. It is not safe for concurrent use.
type Controller struct {
	size    core.Size
	catalog *patterns.Catalog
	log     *log.Logger

	grid       *core.Grid
	playback   Playback
	generation int
	current    string

	preview      life.Transitions
	previewValid bool
}

// New returns a paused controller holding an empty grid of size.
func New(size core.Size, catalog *patterns.Catalog, logger *log.Logger) *Controller {
	if catalog == nil {
		catalog, _ = patterns.NewCatalog()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{size: size, catalog: catalog, log: logger}
	c.replace(core.NewGrid(size), EmptyLabel)
	return c
}

// Grid returns the current generation. Callers must not mutate it.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Size returns the fixed grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Playback returns the current run state.
func (c *Controller) Playback() Playback { return c.playback }

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.playback == Paused }

// Generation counts steps since the grid was last replaced.
func (c *Controller) Generation() int { return c.generation }

// Population counts living cells in the current grid.
func (c *Controller) Population() int { return c.grid.Population() }

// Current names the seed the grid was last replaced with.
func (c *Controller) Current() string { return c.current }

// Patterns lists the selectable pattern names in index order.
func (c *Controller) Patterns() []string { return c.catalog.Names() }

// Transitions tags every cell of the current grid with what the next step
// would do to it. The result is cached until the grid changes.
func (c *Controller) Transitions() life.Transitions {
	if !c.previewValid {
		c.preview = life.Preview(c.grid)
		c.previewValid = true
	}
	return c.preview
}

// TogglePause flips between paused and running.
func (c *Controller) TogglePause() {
	if c.playback == Paused {
		c.playback = Running
	} else {
		c.playback = Paused
	}
	c.log.Debug("playback toggled", "state", c.playback)
}

// Pause forces the paused state.
func (c *Controller) Pause() { c.playback = Paused }

// SelectPattern pauses and replaces the grid with the pattern at index.
// patterns.EmptyIndex, an out-of-range index or a placement that does not fit
// all fall back to the empty grid; the returned error is informational.
func (c *Controller) SelectPattern(index int) error {
	c.Pause()
	if index == patterns.EmptyIndex {
		c.replace(core.NewGrid(c.size), EmptyLabel)
		return nil
	}
	p, err := c.catalog.At(index)
	if err != nil {
		c.log.Warn("pattern selection rejected", "index", index, "err", err)
		c.replace(core.NewGrid(c.size), EmptyLabel)
		return err
	}
	g, err := life.CreateGrid(c.size, &p)
	if err != nil {
		c.log.Warn("pattern does not fit grid", "pattern", p.Name, "err", err)
		c.replace(g, EmptyLabel)
		return err
	}
	c.replace(g, p.Name)
	return nil
}

// SelectByName pauses and replaces the grid with the named pattern.
func (c *Controller) SelectByName(name string) error {
	for i, n := range c.catalog.Names() {
		if n == name {
			return c.SelectPattern(i)
		}
	}
	c.Pause()
	c.replace(core.NewGrid(c.size), EmptyLabel)
	err := errors.Wrapf(core.ErrUnknownPattern, "%q", name)
	c.log.Warn("pattern selection rejected", "name", name, "err", err)
	return err
}

// SubmitSelection answers the pattern prompt with raw user input.
func (c *Controller) SubmitSelection(input string) error {
	index, err := patterns.ParseSelection(input, c.catalog.Len())
	if err != nil {
		c.Pause()
		c.log.Warn("pattern selection rejected", "input", input, "err", err)
		c.replace(core.NewGrid(c.size), EmptyLabel)
		return err
	}
	return c.SelectPattern(index)
}

// Click brings the cell at at to life while paused. Living cells stay alive
// and clicks outside the grid or while running are ignored.
func (c *Controller) Click(at core.Coord) {
	if c.playback != Paused {
		return
	}
	if c.grid.Alive(at) {
		return
	}
	if err := life.SetCell(c.grid, at, core.Alive); err != nil {
		return
	}
	c.previewValid = false
	c.log.Debug("cell set", "cell", at)
}

// Tick advances one generation when running and does nothing when paused.
func (c *Controller) Tick() {
	if c.playback != Running {
		return
	}
	c.advance()
}

// StepOnce advances a single generation while paused.
func (c *Controller) StepOnce() {
	if c.playback != Paused {
		return
	}
	c.advance()
}

// Randomize pauses and replaces the grid with a deterministic soup.
func (c *Controller) Randomize(seed int64, density float64) {
	c.Pause()
	g := core.NewGrid(c.size)
	core.FillRandom(core.NewRNG(seed), g, density)
	c.replace(g, "soup #"+strconv.FormatInt(seed, 10))
}

// Parameters summarises the controller for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	tr := c.Transitions()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Playback",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: c.playback.String()},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(c.generation)},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "pattern", Label: "Seed", Value: c.current},
				{Key: "size", Label: "Size", Value: c.size.String()},
				{Key: "population", Label: "Alive", Value: strconv.Itoa(c.Population())},
				{Key: "dying", Label: "Dying next", Value: strconv.Itoa(tr.Count(life.Died))},
				{Key: "born", Label: "Born next", Value: strconv.Itoa(tr.Count(life.Born))},
			},
		},
	}}
}

func (c *Controller) advance() {
	next, tr := life.Step(c.grid)
	c.grid = next
	c.generation++
	c.previewValid = false
	c.log.Debug("generation", "n", c.generation, "born", tr.Count(life.Born), "died", tr.Count(life.Died))
}

func (c *Controller) replace(g *core.Grid, label string) {
	c.grid = g
	c.generation = 0
	c.current = label
	c.previewValid = false
	c.log.Debug("grid replaced", "seed", label, "population", g.Population())
}
