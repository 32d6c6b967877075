package controller

import "mad-life/internal/core"

// Event is a discrete input delivered to Handle.
type Event interface {
	event()
}

// TogglePauseEvent flips the playback state.
type TogglePauseEvent struct{}

// SelectPatternEvent replaces the grid with the pattern at Index.
type SelectPatternEvent struct{ Index int }

// SubmitSelectionEvent answers the pattern prompt with raw text.
type SubmitSelectionEvent struct{ Input string }

// ClickCellEvent sets a cell alive while paused.
type ClickCellEvent struct{ Cell core.Coord }

// TickEvent is delivered once per frame.
type TickEvent struct{}

// StepOnceEvent advances a single generation while paused.
type StepOnceEvent struct{}

// RandomizeEvent seeds a random soup.
type RandomizeEvent struct {
	Seed    int64
	Density float64
}

func (TogglePauseEvent) event()     {}
func (SelectPatternEvent) event()   {}
func (SubmitSelectionEvent) event() {}
func (ClickCellEvent) event()       {}
func (TickEvent) event()            {}
func (StepOnceEvent) event()        {}
func (RandomizeEvent) event()       {}

// Handle applies events in order. Selection errors are recovered in place;
// the last one is returned for display.
func (c *Controller) Handle(events ...Event) error {
	var last error
	for _, ev := range events {
		switch e := ev.(type) {
		case TogglePauseEvent:
			c.TogglePause()
		case SelectPatternEvent:
			if err := c.SelectPattern(e.Index); err != nil {
				last = err
			}
		case SubmitSelectionEvent:
			if err := c.SubmitSelection(e.Input); err != nil {
				last = err
			}
		case ClickCellEvent:
			c.Click(e.Cell)
		case TickEvent:
			c.Tick()
		case StepOnceEvent:
			c.StepOnce()
		case RandomizeEvent:
			c.Randomize(e.Seed, e.Density)
		}
	}
	return last
}
