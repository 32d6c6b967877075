package render

import (
	"image/color"

	"mad-life/internal/life"
)

// Palette colours cells by the transition they are about to make.
type Palette struct {
	Background color.RGBA
	Alive      color.RGBA
	AboutToDie color.RGBA
	Born       color.RGBA
	Highlight  color.RGBA
}

// DefaultPalette returns the built-in colour scheme.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 10, G: 10, B: 40, A: 255},
		Alive:      color.RGBA{R: 255, G: 255, B: 215, A: 255},
		AboutToDie: color.RGBA{R: 200, G: 200, B: 225, A: 255},
		Born:       color.RGBA{R: 120, G: 220, B: 140, A: 255},
		Highlight:  color.RGBA{R: 255, G: 80, B: 80, A: 255},
	}
}

// For returns the fill colour for a cell with transition t.
func (p Palette) For(t life.Transition) color.RGBA {
	switch t {
	case life.Survived:
		return p.Alive
	case life.Died:
		return p.AboutToDie
	case life.Born:
		return p.Born
	default:
		return p.Background
	}
}
