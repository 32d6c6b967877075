package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mad-life/internal/controller"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		name        string
		random      bool
		generations int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance a pattern without a window and print the final board",
		Example: `  ca simulate --pattern glider --generations 40 --rows 20 --cols 20
  ca simulate --random --seed 7 --generations 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generations < 0 {
				return fmt.Errorf("--generations must not be negative, got %d", generations)
			}
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			ctrl, err := newController(cfg, logger)
			if err != nil {
				return err
			}

			switch {
			case random:
				ctrl.Randomize(cfg.Seed, cfg.Density)
			case name != "":
				if err := ctrl.SelectByName(name); err != nil {
					return err
				}
			}

			start := ctrl.Population()
			ctrl.Handle(controller.TogglePauseEvent{})
			for i := 0; i < generations; i++ {
				ctrl.Handle(controller.TickEvent{})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, previewStyle.Render(strings.TrimSuffix(ctrl.Grid().String(), "\n")))
			fmt.Fprintf(out, "%s: generation %d, population %d (started with %d)\n",
				nameStyle.Render(ctrl.Current()), ctrl.Generation(), ctrl.Population(), start)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "pattern", "p", "", "pattern name (see `ca patterns`)")
	cmd.Flags().BoolVar(&random, "random", false, "start from a random soup using --seed and --density")
	cmd.Flags().IntVarP(&generations, "generations", "g", 100, "generations to advance")
	return cmd
}
