package astar

import (
	"iter"
	"slices"
)

// testGraph is an adjacency list with optional edge weights (default 1).
type testGraph struct {
	edges   map[int][]int
	weights map[[2]int]float64
	goal    int
}

func (g testGraph) Reachable(node int) iter.Seq[int] { return slices.Values(g.edges[node]) }
func (g testGraph) IsGoal(node int) bool              { return node == g.goal }
func (g testGraph) GoalCost(int) float64              { return 0 }

func (g testGraph) EdgeCost(from, to int) float64 {
	if w, ok := g.weights[[2]int{from, to}]; ok {
		return w
	}
	return 1
}

func chainGraph(goal int) testGraph {
	return testGraph{
		edges: map[int][]int{0: {1}, 1: {2}, 2: {3}, 3: {4}},
		goal:  goal,
	}
}

func zero[NodeType comparable](NodeType) float64 { return 0 }
