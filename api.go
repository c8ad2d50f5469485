package astar

import (
	"iter"
	"log/slog"
)

// Reachable returns the nodes reachable in one step from node.
// The sequence must be finite.
type Reachable[NodeType comparable] func(node NodeType) iter.Seq[NodeType]

// GoalTest reports whether node ends the search.
type GoalTest[NodeType comparable] func(node NodeType) bool

// Heuristic returns the estimated cost from node to the nearest goal.
type Heuristic[NodeType comparable] func(node NodeType) float64

// EdgeCost returns the cost of moving between two adjacent nodes.
type EdgeCost[NodeType comparable] func(from, to NodeType) float64

// Problem bundles the four collaborators of a search.
type Problem[NodeType comparable] struct {
	Reachable Reachable[NodeType]
	IsGoal    GoalTest[NodeType]
	GoalCost  Heuristic[NodeType]
	EdgeCost  EdgeCost[NodeType]
}

// Graph provides the collaborators of a search as methods.
// NodeType must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Reachable(node NodeType) iter.Seq[NodeType]
	IsGoal(node NodeType) bool
	GoalCost(node NodeType) float64
	EdgeCost(from, to NodeType) float64
}

// ProblemOf adapts a Graph to a Problem.
func ProblemOf[NodeType comparable](graph Graph[NodeType]) Problem[NodeType] {
	return Problem[NodeType]{
		Reachable: graph.Reachable,
		IsGoal:    graph.IsGoal,
		GoalCost:  graph.GoalCost,
		EdgeCost:  graph.EdgeCost,
	}
}

// Relaxation selects how a newly found route to a node is compared with the
// stored one.
type Relaxation int

const (
	// RelaxByF replaces the stored record when its f-score is strictly greater
	// than the candidate's. This is the default.
	RelaxByF Relaxation = iota
	// RelaxByG replaces the stored record when its g-score is strictly greater
	// than the candidate's.
	RelaxByG
)

func (r Relaxation) String() string {
	switch r {
	case RelaxByF:
		return "f"
	case RelaxByG:
		return "g"
	default:
		return "unknown"
	}
}

// relaxes reports whether candidate should replace existing under rule.
func relaxes[NodeType comparable](rule Relaxation, existing, candidate nodeRecord[NodeType]) bool {
	if rule == RelaxByG {
		return existing.g > candidate.g
	}
	return existing.f > candidate.f
}

// Options defines parameters for the search.
type Options struct {
	Relaxation Relaxation
	Logger     *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithRelaxation sets the relaxation rule.
func WithRelaxation(relaxation Relaxation) Option {
	return func(options *Options) { options.Relaxation = relaxation }
}

// WithLogger sets the logger that receives search summaries at debug level.
// A nil logger falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Relaxation: RelaxByF}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default()
	}
	return searchOptions
}

// Search runs A* from start until a node satisfying isGoal is generated.
//
// It returns false both when start already satisfies isGoal and when the
// frontier is exhausted without reaching a goal. Panics raised by the
// collaborators are not recovered.
func Search[NodeType comparable](
	start NodeType,
	reachable Reachable[NodeType],
	isGoal GoalTest[NodeType],
	goalCost Heuristic[NodeType],
	edgeCost EdgeCost[NodeType],
	options ...Option,
) (*Path[NodeType], bool) {
	problem := Problem[NodeType]{
		Reachable: reachable,
		IsGoal:    isGoal,
		GoalCost:  goalCost,
		EdgeCost:  edgeCost,
	}
	return SearchProblem(start, problem, options...)
}

// SearchProblem is Search with the collaborators bundled in a Problem.
func SearchProblem[NodeType comparable](start NodeType, problem Problem[NodeType], options ...Option) (*Path[NodeType], bool) {
	stepper := NewStepper(start, problem, options...)
	for stepper.advance() {
	}
	stepper.logSummary()
	return stepper.takePath()
}

// SearchGraph is Search with the collaborators provided by a Graph.
func SearchGraph[NodeType comparable](graph Graph[NodeType], start NodeType, options ...Option) (*Path[NodeType], bool) {
	return SearchProblem(start, ProblemOf(graph), options...)
}
