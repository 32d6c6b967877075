//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter executes draw commands on an ebiten image.
type Painter struct {
	pal Palette
}

// NewPainter returns a painter clearing to the palette background.
func NewPainter(pal Palette) *Painter {
	return &Painter{pal: pal}
}

// Paint clears dst to the background and draws rects in order.
func (p *Painter) Paint(dst *ebiten.Image, rects []Rect) {
	dst.Fill(p.pal.Background)
	for _, r := range rects {
		if r.Outline {
			vector.StrokeRect(dst, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, r.Color, false)
			continue
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
	}
}
