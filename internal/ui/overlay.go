//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the pattern selection prompt over the grid and collects the
// typed answer.
type Overlay struct {
	prompt Prompt
	chars  []rune
}

// NewOverlay constructs a closed overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Open shows the list of pattern names.
func (o *Overlay) Open(names []string) { o.prompt.Open(names) }

// IsOpen reports whether the overlay is capturing keyboard input.
func (o *Overlay) IsOpen() bool { return o.prompt.IsOpen() }

// Update consumes keyboard input while open. It returns the answer and true
// once Enter is pressed; Escape closes the overlay with no answer.
func (o *Overlay) Update() (string, bool) {
	if !o.prompt.IsOpen() {
		return "", false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		o.prompt.Cancel()
		return "", false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return o.prompt.Submit(), true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		o.prompt.Backspace()
	}
	o.chars = ebiten.AppendInputChars(o.chars[:0])
	for _, r := range o.chars {
		o.prompt.Type(r)
	}
	return "", false
}

// Draw renders the prompt when open.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.prompt.IsOpen() {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(screen, "Select a pattern (Enter to confirm, Esc to cancel)", face, panelPadding, y, titleColor)
	y += infoSpacing
	for _, line := range o.prompt.Lines() {
		text.Draw(screen, line, face, panelPadding, y, valueColor)
		y += lineHeight
	}
}
