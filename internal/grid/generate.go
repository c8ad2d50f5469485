package grid

import "math/rand"

// GenerateWalls places clustered random walls by random walks. Each of the
// clusters walks steps cells and walls every visited cell with probability
// density. start and goal are never walled.
func GenerateWalls(r *rand.Rand, w, h, clusters, steps int, density float64, start, goal Point) map[Point]bool {
	walls := map[Point]bool{}
	if w <= 0 || h <= 0 {
		return walls
	}
	for c := 0; c < clusters; c++ {
		p := Point{r.Intn(w), r.Intn(h)}
		for s := 0; s < steps; s++ {
			if r.Float64() < density && p != start && p != goal {
				walls[p] = true
			}
			d := directions[r.Intn(len(directions))]
			np := Point{p[0] + d[0], p[1] + d[1]}
			if np[0] >= 0 && np[0] < w && np[1] >= 0 && np[1] < h {
				p = np
			}
		}
	}
	return walls
}

// RandomParams controls Random. Unset fields, and values out of range, take
// the defaults of DefaultRandomParams. Density is a pointer so that an explicit
// 0 (no walls) differs from an unset density.
type RandomParams struct {
	Width    int      `json:"w" yaml:"width"`
	Height   int      `json:"h" yaml:"height"`
	Clusters int      `json:"clusters" yaml:"clusters"`
	Steps    int      `json:"steps" yaml:"steps"`
	Density  *float64 `json:"density" yaml:"density"`
	Seed     int64    `json:"seed" yaml:"seed"`
}

const defaultDensity = 0.25

// DefaultRandomParams returns the parameters used when a field is left zero.
func DefaultRandomParams() RandomParams {
	density := defaultDensity
	return RandomParams{Width: 40, Height: 24, Clusters: 8, Steps: 200, Density: &density}
}

func (p RandomParams) withDefaults() RandomParams {
	d := DefaultRandomParams()
	if p.Width <= 4 {
		p.Width = d.Width
	}
	if p.Height <= 4 {
		p.Height = d.Height
	}
	if p.Clusters <= 0 {
		p.Clusters = d.Clusters
	}
	if p.Steps <= 0 {
		p.Steps = d.Steps
	}
	if p.Density == nil || *p.Density < 0 || *p.Density > 1 {
		p.Density = d.Density
	}
	return p
}

// Random builds a grid with clustered walls and distinct random start and goal
// cells. The same params and seed always give the same grid.
func Random(params RandomParams) (*Grid, Point, Point) {
	params = params.withDefaults()
	r := rand.New(rand.NewSource(params.Seed))

	var start, goal Point
	for {
		start = Point{r.Intn(params.Width), r.Intn(params.Height)}
		goal = Point{r.Intn(params.Width), r.Intn(params.Height)}
		if start != goal {
			break
		}
	}
	g := &Grid{
		Width:  params.Width,
		Height: params.Height,
		Walls:  GenerateWalls(r, params.Width, params.Height, params.Clusters, params.Steps, *params.Density, start, goal),
	}
	return g, start, goal
}
