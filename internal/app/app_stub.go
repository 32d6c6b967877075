//go:build !ebiten

package app

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"mad-life/internal/config"
	"mad-life/internal/controller"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI build of mad-life requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/ca`")

// Run reports that the window cannot be opened in the headless build.
func Run(config.Config, *controller.Controller, *log.Logger) error {
	return ErrNoGUI
}
