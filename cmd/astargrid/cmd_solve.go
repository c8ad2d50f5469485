package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/astarkit/internal/grid"
)

var errNoRoute = errors.New("no route found")

var (
	solveConfigPath string
	solveColor      bool
	solveRelax      string
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the grid problem described by a YAML file",
		RunE:  runSolve,
	}
	cmd.Flags().StringVarP(&solveConfigPath, "config", "c", "grid.yaml", "path to the grid problem file")
	cmd.Flags().BoolVar(&solveColor, "color", false, "colour the rendered grid")
	cmd.Flags().StringVar(&solveRelax, "relax", "", "relaxation rule, f or g (overrides the file)")
	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := grid.LoadConfig(solveConfigPath)
	if err != nil {
		return err
	}
	if solveRelax != "" {
		cfg.Relaxation = solveRelax
	}
	scenario, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("invalid grid problem %s: %w", solveConfigPath, err)
	}
	logger.Debug("Grid loaded",
		"config", solveConfigPath,
		"w", scenario.Grid.Width,
		"h", scenario.Grid.Height,
		"relaxation", scenario.Relaxation)

	path, ok := scenario.Solve(logger)
	if !ok {
		logger.Info("Search failed", "start", scenario.Start, "goal", scenario.Goal)
		return errNoRoute
	}

	route := path.Route()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, grid.NewRenderer(solveColor).Render(scenario.Grid, scenario.Start, scenario.Goal, route, nil))
	fmt.Fprintf(out, "steps: %d\ncost: %g\nexplored: %d\n", len(route)-1, path.Cost(scenario.Grid.Cost), path.Explored())
	return nil
}
