// Package config provides YAML-based configuration with embedded defaults
// and command-line overrides.
package config

import (
	_ "embed"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mad-life/internal/core"
	"mad-life/internal/patterns"
	"mad-life/internal/render"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds every recognised option.
type Config struct {
	Title    string  `yaml:"title"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CellSize int     `yaml:"cell_size"`
	FPS      int     `yaml:"fps"`
	HUDWidth int     `yaml:"hud_width"`
	Seed     int64   `yaml:"seed"`
	Density  float64 `yaml:"density"`
	LogLevel string  `yaml:"log_level"`

	Palette  PaletteConfig   `yaml:"palette"`
	Patterns []PatternConfig `yaml:"patterns"`
}

// PaletteConfig lists colours as "#rrggbb" strings.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Alive      string `yaml:"alive"`
	AboutToDie string `yaml:"about_to_die"`
	Born       string `yaml:"born"`
	Highlight  string `yaml:"highlight"`
}

// PatternConfig is one catalog entry. Offset is [row, col].
type PatternConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Offset      [2]int   `yaml:"offset"`
	Cells       []string `yaml:"cells"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallback()
	}
	return cfg
}

func fallback() Config {
	return Config{
		Title:    "Conway's Game of Life",
		Rows:     60,
		Cols:     80,
		CellSize: 10,
		FPS:      10,
		HUDWidth: 180,
		Seed:     42,
		Density:  0.25,
		LogLevel: "info",
		Palette: PaletteConfig{
			Background: "#0a0a28",
			Alive:      "#ffffd7",
			AboutToDie: "#c8c8e1",
			Born:       "#78dc8c",
			Highlight:  "#ff5050",
		},
	}
}

// Bind attaches overridable options to fs, using the current values as defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames (and generations) per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "status panel width in pixels, 0 hides it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive in a random soup")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Size returns the grid dimensions.
func (c Config) Size() core.Size { return core.Size{Rows: c.Rows, Cols: c.Cols} }

// Level parses LogLevel, defaulting to info.
func (c Config) Level() log.Level {
	if c.LogLevel == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.HUDWidth < 0 {
		return errors.Errorf("hud_width must not be negative, got %d", c.HUDWidth)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %g", c.Density)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrap(err, "log_level")
		}
	}
	if _, err := c.RenderPalette(); err != nil {
		return err
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// RenderPalette parses the configured colours.
func (c Config) RenderPalette() (render.Palette, error) {
	var pal render.Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Palette.Background, &pal.Background},
		{"alive", c.Palette.Alive, &pal.Alive},
		{"about_to_die", c.Palette.AboutToDie, &pal.AboutToDie},
		{"born", c.Palette.Born, &pal.Born},
		{"highlight", c.Palette.Highlight, &pal.Highlight},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return render.Palette{}, errors.Wrapf(err, "palette.%s", f.name)
		}
		r, g, b := col.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal, nil
}

// Catalog builds the pattern catalog in the order patterns are listed.
func (c Config) Catalog() (*patterns.Catalog, error) {
	ps := make([]patterns.Pattern, 0, len(c.Patterns))
	for i, pc := range c.Patterns {
		tmpl, err := patterns.ParseTemplate(pc.Cells)
		if err != nil {
			return nil, errors.Wrapf(err, "patterns[%d] %q", i, pc.Name)
		}
		p, err := patterns.New(pc.Name, pc.Description, core.Coord{Row: pc.Offset[0], Col: pc.Offset[1]}, tmpl)
		if err != nil {
			return nil, errors.Wrapf(err, "patterns[%d]", i)
		}
		ps = append(ps, p)
	}
	cat, err := patterns.NewCatalog(ps...)
	if err != nil {
		return nil, errors.Wrap(err, "patterns")
	}
	return cat, nil
}
