// ca runs Conway's Game of Life.
//
// Usage:
//
//	ca [run]                 - Open the window (requires -tags ebiten)
//	ca patterns              - List the pattern catalog
//	ca simulate -p <name>    - Advance a pattern headlessly and print the board
//
// Global flags:
//
//	--config <path>  - YAML config (default: ~/.mad-life/config.yaml, ./configs/config.yaml, embedded)
//	--rows, --cols, --cell-size, --fps, --title, --hud-width, --seed, --density, --log-level
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
