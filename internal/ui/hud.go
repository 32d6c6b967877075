//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mad-life/internal/core"
)

// HUD renders the status panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the given panel width. A zero width disables it.
func NewHUD(title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Status"
	}
	return &HUD{width: width, title: title}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the snapshot to draw on the next frame.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += infoSpacing

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var helpLines = []string{
	"Space  run / pause",
	"R      choose pattern",
	"N      single step",
	"S      random soup",
	"Click  set cell (paused)",
	"Q      quit",
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	infoSpacing    = 28
)
