package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mad-life/internal/app"
	"mad-life/internal/config"
	"mad-life/internal/controller"
)

type rootOptions struct {
	configPath string
	defaults   config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{defaults: config.Default()}

	root := &cobra.Command{
		Use:   "ca",
		Short: "Conway's Game of Life",
		Long: `ca simulates Conway's Game of Life on a fixed grid.

In the window: Space runs or pauses, R chooses a pattern, N steps once while
paused, S seeds a random soup, clicking sets cells while paused, Q quits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	opts.defaults.Bind(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Open the simulation window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	})
	root.AddCommand(newPatternsCmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	return root
}

// resolveConfig loads the config file and re-applies any flags the user set
// explicitly, so flags win over file values.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	cfg.Bind(overrides)

	var setErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		target := overrides.Lookup(f.Name)
		if target == nil || setErr != nil {
			return
		}
		if err := target.Value.Set(f.Value.String()); err != nil {
			setErr = errors.Wrapf(err, "--%s", f.Name)
		}
	})
	if setErr != nil {
		return cfg, setErr
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mad-life",
		Level:           cfg.Level(),
	})
}

func newController(cfg config.Config, logger *log.Logger) (*controller.Controller, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	return controller.New(cfg.Size(), catalog, logger), nil
}

func runGUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctrl, err := newController(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(cfg, ctrl, logger)
}
