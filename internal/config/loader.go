package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads configuration. Search order: customPath -> ~/.mad-life/config.yaml
// -> ./configs/config.yaml -> embedded default. Files are layered over the
// embedded default so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, errors.Wrapf(err, "[Load] failed to read config %s", customPath)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "[Load] failed to parse config %s", customPath)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := cfg
		if err := decode(data, &layered); err == nil {
			return layered, nil
		}
	}
	return cfg, nil
}

// decode overlays data onto cfg. A patterns list in data replaces the
// default catalog rather than merging with it.
func decode(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mad-life", filename)
}
