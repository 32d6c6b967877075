package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mad-life/internal/core"
	"mad-life/internal/patterns"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func newPatternsCmd(opts *rootOptions) *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the pattern catalog",
		Long:  `Shows every pattern with the index used by the in-window prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Patterns for a %s grid:", cfg.Size())))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %3d  %s\n", patterns.EmptyIndex, "Empty Grid")
			for i := 0; i < catalog.Len(); i++ {
				p, err := catalog.At(i)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("  %3d  %s  %s", i, nameStyle.Render(p.Name),
					dimStyle.Render(fmt.Sprintf("%s at %s", p.Size(), p.Offset)))
				if !p.Fits(cfg.Size()) {
					line += "  " + dimStyle.Render("(does not fit)")
				}
				if p.Description != "" {
					line += "  " + p.Description
				}
				fmt.Fprintln(out, line)
				if preview {
					fmt.Fprintln(out, previewStyle.Render(templateString(p)))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "draw each template")
	return cmd
}

func templateString(p patterns.Pattern) string {
	g := core.NewGrid(p.Size())
	for r, row := range p.Template() {
		for c, alive := range row {
			if alive {
				_ = g.Set(core.Coord{Row: r, Col: c}, core.Alive)
			}
		}
	}
	return strings.TrimSuffix(g.String(), "\n")
}
