package grid

import (
	"iter"

	astar "github.com/pdrpinto/astarkit"
)

// Point is a cell as {x, y}.
type Point = [2]int

var directions = []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangle of cells. Walls cannot be entered; entering any other
// cell costs its weight, 1 unless set in Weights.
type Grid struct {
	Width   int
	Height  int
	Walls   map[Point]bool
	Weights map[Point]float64
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p[0] >= 0 && p[0] < g.Width && p[1] >= 0 && p[1] < g.Height
}

// Open reports whether p is inside the grid and not a wall.
func (g *Grid) Open(p Point) bool { return g.In(p) && !g.Walls[p] }

// Neighbors yields the open cells next to p.
func (g *Grid) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range directions {
			np := Point{p[0] + d[0], p[1] + d[1]}
			if g.Open(np) && !yield(np) {
				return
			}
		}
	}
}

// Cost returns the cost of stepping from one cell into the adjacent cell to.
func (g *Grid) Cost(_, to Point) float64 {
	if w, ok := g.Weights[to]; ok {
		return w
	}
	return 1
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Point) float64 {
	dx := a[0] - b[0]
	if dx < 0 {
		dx = -dx
	}
	dy := a[1] - b[1]
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// Problem describes the search for goal on this grid, guided by the
// Manhattan distance.
func (g *Grid) Problem(goal Point) astar.Problem[Point] {
	return astar.Problem[Point]{
		Reachable: g.Neighbors,
		IsGoal:    func(p Point) bool { return p == goal },
		GoalCost:  func(p Point) float64 { return Manhattan(p, goal) },
		EdgeCost:  g.Cost,
	}
}
