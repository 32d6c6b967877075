//go:build ebiten

package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-life/internal/config"
	"mad-life/internal/controller"
	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
)

// Game adapts the controller to the ebiten.Game interface.
type Game struct {
	ctrl    *controller.Controller
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *log.Logger

	palette  render.Palette
	cellSize int
	density  float64
}

// New constructs a Game drawing ctrl with the configured palette and sizes.
func New(cfg config.Config, ctrl *controller.Controller, logger *log.Logger) (*Game, error) {
	pal, err := cfg.RenderPalette()
	if err != nil {
		return nil, err
	}
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewPainter(pal),
		hud:      ui.NewHUD(cfg.Title, cfg.HUDWidth),
		overlay:  ui.NewOverlay(),
		log:      logger,
		palette:  pal,
		cellSize: cfg.CellSize,
		density:  cfg.Density,
	}, nil
}

// Run opens the window and blocks until the user quits.
func Run(cfg config.Config, ctrl *controller.Controller, logger *log.Logger) error {
	game, err := New(cfg, ctrl, logger)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("window opened", "grid", ctrl.Size(), "cell_size", cfg.CellSize, "fps", cfg.FPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("window closed", "generation", ctrl.Generation())
	return nil
}

// Update handles input for this frame, then ticks the simulation.
func (g *Game) Update() error {
	if g.overlay.IsOpen() {
		if answer, ok := g.overlay.Update(); ok {
			if err := g.ctrl.SubmitSelection(answer); err != nil {
				g.log.Warn("falling back to empty grid", "err", err)
			} else {
				g.log.Info("pattern selected", "pattern", g.ctrl.Current())
			}
		}
		g.hud.Update(g.ctrl.Parameters())
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Pause()
		g.overlay.Open(g.ctrl.Patterns())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		g.ctrl.Randomize(seed, g.density)
		g.log.Info("random soup", "seed", seed, "density", g.density)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if cell, ok := g.pointerCell(); ok {
			g.ctrl.Click(cell)
		}
	}

	g.ctrl.Tick()
	g.hud.Update(g.ctrl.Parameters())
	return nil
}

// Draw renders the current generation, the HUD and the prompt.
func (g *Game) Draw(screen *ebiten.Image) {
	var highlight *core.Coord
	if g.ctrl.Paused() && !g.overlay.IsOpen() {
		if cell, ok := g.pointerCell(); ok {
			highlight = &cell
		}
	}
	rects := render.Frame(g.ctrl.Grid(), g.ctrl.Transitions(), g.cellSize, g.palette, highlight)
	g.painter.Paint(screen, rects)

	w, h := g.gridPixels()
	g.hud.Draw(screen, w, h)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.gridPixels()
	return w + g.hud.Width(), h
}

func (g *Game) gridPixels() (int, int) {
	s := g.ctrl.Size()
	return s.Cols * g.cellSize, s.Rows * g.cellSize
}

func (g *Game) pointerCell() (core.Coord, bool) {
	x, y := ebiten.CursorPosition()
	cell := render.CellAt(x, y, g.cellSize)
	return cell, g.ctrl.Size().Contains(cell)
}
