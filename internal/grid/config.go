package grid

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/astarkit"
)

// Config is a grid search problem as read from YAML.
//
// A grid comes from exactly one of three sources: Generate (random walls),
// Layout (ASCII rows) or Width, Height and Walls. Generate cannot be combined
// with any of the others. Start and Goal override the S and G cells of a layout
// and the random endpoints of a generated grid; they must differ.
//
// Layout cells: '.' open, '#' wall, 'S' start, 'G' goal, '1'-'9' open with
// that entry cost.
type Config struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Start      *Point        `yaml:"start"`
	Goal       *Point        `yaml:"goal"`
	Walls      []Point       `yaml:"walls"`
	Layout     string        `yaml:"layout"`
	Relaxation string        `yaml:"relaxation"`
	Generate   *RandomParams `yaml:"generate"`
}

// Scenario is a validated, ready to search problem.
type Scenario struct {
	Grid       *Grid
	Start      Point
	Goal       Point
	Relaxation astar.Relaxation
}

// LoadConfig reads and parses a YAML problem file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML problem.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing grid config: %w", err)
	}
	return &cfg, nil
}

// ParseRelaxation maps "f" (or "") and "g" to a relaxation rule.
func ParseRelaxation(name string) (astar.Relaxation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "f":
		return astar.RelaxByF, nil
	case "g":
		return astar.RelaxByG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrRelaxation, name)
	}
}

// Build validates the config and turns it into a Scenario.
func (c *Config) Build() (*Scenario, error) {
	relaxation, err := ParseRelaxation(c.Relaxation)
	if err != nil {
		return nil, err
	}

	var (
		g           *Grid
		start, goal *Point
	)
	if c.Generate != nil && (c.Layout != "" || c.Width != 0 || c.Height != 0 || len(c.Walls) > 0) {
		return nil, fmt.Errorf("%w: generate cannot be combined with layout, width, height or walls", ErrConflict)
	}

	switch {
	case c.Generate != nil:
		var s, e Point
		g, s, e = Random(*c.Generate)
		start, goal = &s, &e
	case c.Layout != "":
		g, start, goal, err = parseLayout(c.Layout)
		if err != nil {
			return nil, err
		}
		if (c.Width != 0 && c.Width != g.Width) || (c.Height != 0 && c.Height != g.Height) {
			return nil, fmt.Errorf("%w: layout is %dx%d, config says %dx%d", ErrLayout, g.Width, g.Height, c.Width, c.Height)
		}
	default:
		g = &Grid{Width: c.Width, Height: c.Height, Walls: make(map[Point]bool, len(c.Walls))}
		for _, w := range c.Walls {
			g.Walls[w] = true
		}
	}
	if c.Start != nil {
		start = c.Start
	}
	if c.Goal != nil {
		goal = c.Goal
	}
	if c.Generate != nil {
		delete(g.Walls, *start)
		delete(g.Walls, *goal)
	}

	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, g.Width, g.Height)
	}
	if start == nil || goal == nil {
		return nil, ErrMissingPoint
	}
	if *start == *goal {
		return nil, fmt.Errorf("%w: %v", ErrSameStartGoal, *start)
	}
	for name, p := range map[string]Point{"start": *start, "goal": *goal} {
		if !g.In(p) {
			return nil, fmt.Errorf("%s %v: %w", name, p, ErrOutOfBounds)
		}
		if g.Walls[p] {
			return nil, fmt.Errorf("%s %v: %w", name, p, ErrBlocked)
		}
	}
	for w := range g.Walls {
		if !g.In(w) {
			return nil, fmt.Errorf("wall %v: %w", w, ErrOutOfBounds)
		}
	}

	return &Scenario{Grid: g, Start: *start, Goal: *goal, Relaxation: relaxation}, nil
}

func parseLayout(layout string) (*Grid, *Point, *Point, error) {
	lines := strings.Split(strings.Trim(layout, "\n"), "\n")
	g := &Grid{
		Height:  len(lines),
		Walls:   map[Point]bool{},
		Weights: map[Point]float64{},
	}
	var start, goal *Point
	for y, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if y == 0 {
			g.Width = len(line)
		} else if len(line) != g.Width {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, y, len(line), g.Width)
		}
		for x, cell := range line {
			p := Point{x, y}
			switch {
			case cell == '.':
			case cell == '#':
				g.Walls[p] = true
			case cell == 'S' || cell == 'G':
				target := &start
				if cell == 'G' {
					target = &goal
				}
				if *target != nil {
					return nil, nil, nil, fmt.Errorf("%w: more than one %q", ErrLayout, cell)
				}
				*target = &p
			case cell >= '1' && cell <= '9':
				g.Weights[p] = float64(cell - '0')
			default:
				return nil, nil, nil, fmt.Errorf("%w: unexpected %q at %v", ErrLayout, cell, p)
			}
		}
	}
	return g, start, goal, nil
}

// Solve searches the scenario.
func (s *Scenario) Solve(logger *slog.Logger) (*astar.Path[Point], bool) {
	return astar.SearchProblem(s.Start, s.Grid.Problem(s.Goal),
		astar.WithRelaxation(s.Relaxation),
		astar.WithLogger(logger),
	)
}
