package astar

import (
	"maps"
	"slices"

	"github.com/pdrpinto/astarkit/internal"
)

// State is the lifecycle phase of a search.
type State int

const (
	StateInitialized State = iota
	StateExpanding
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateExpanding:
		return "expanding"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs a search one node expansion at a time. Search and its variants
// drive a Stepper to completion; callers that want to watch the search, or
// bound it, drive it themselves.
//
// A Stepper is not safe for concurrent use.
type Stepper[NodeType comparable] struct {
	problem Problem[NodeType]
	options Options
	start   NodeType

	records recordStore[NodeType]
	open    *frontier[NodeType]
	closed  closedSet[NodeType]

	state     State
	current   NodeType
	goal      NodeType
	stepCount int
	expanded  int

	// final is the last snapshot taken before the record store moved into a Path.
	final *StepSnapshot[NodeType]
}

// NewStepper prepares a search from start. If start already satisfies the goal
// test the stepper is created in StateFailed.
func NewStepper[NodeType comparable](start NodeType, problem Problem[NodeType], options ...Option) *Stepper[NodeType] {
	s := &Stepper[NodeType]{
		problem: problem,
		options: applyOptions(options),
		start:   start,
		records: make(recordStore[NodeType]),
		open:    newFrontier[NodeType](),
		closed:  make(closedSet[NodeType]),
		state:   StateInitialized,
	}

	if problem.IsGoal(start) {
		s.state = StateFailed
		return s
	}

	s.records.put(start, newNodeRecord(0, 0, start))
	s.open.push(0, start)
	return s
}

// State returns the current lifecycle phase.
func (s *Stepper[NodeType]) State() State { return s.state }

// Done reports whether the search has reached a terminal state.
func (s *Stepper[NodeType]) Done() bool {
	return s.state == StateSucceeded || s.state == StateFailed
}

// Expanded returns the number of nodes popped from the frontier so far.
func (s *Stepper[NodeType]) Expanded() int { return s.expanded }

// advance pops one frontier entry and expands it. It returns false once the
// search has terminated.
func (s *Stepper[NodeType]) advance() bool {
	if s.Done() {
		return false
	}
	s.state = StateExpanding

	_, current, ok := s.open.popMin()
	if !ok {
		s.state = StateFailed
		return false
	}
	// Closed on first pop, even when the popped entry is stale.
	s.closed.insert(current)
	s.current = current
	s.expanded++

	currentRecord, _ := s.records.get(current)
	for neighbor := range s.problem.Reachable(current) {
		if s.problem.IsGoal(neighbor) {
			s.records.put(neighbor, newNodeRecord(0, 0, current))
			s.goal = neighbor
			s.state = StateSucceeded
			return false
		}

		if s.closed.contains(neighbor) {
			continue
		}

		candidate := newNodeRecord(
			currentRecord.g+s.problem.EdgeCost(current, neighbor),
			s.problem.GoalCost(neighbor),
			current,
		)
		if existing, seen := s.records.get(neighbor); !seen || relaxes(s.options.Relaxation, existing, candidate) {
			s.open.push(candidate.f, neighbor)
			s.records.put(neighbor, candidate)
		}
	}

	if s.open.Len() == 0 {
		s.state = StateFailed
		return false
	}
	return true
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step only returns the final snapshot again.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	if !s.Done() {
		s.stepCount++
		s.advance()
	}
	return s.snapshot()
}

// Path hands over the result of a successful search. The record store moves
// into the returned Path, so only the first call after success returns true.
// Step keeps returning the snapshot taken at the handover.
func (s *Stepper[NodeType]) Path() (*Path[NodeType], bool) {
	if s.state != StateSucceeded || s.records == nil {
		return nil, false
	}
	final := s.snapshot()
	s.final = &final
	return s.takePath()
}

// takePath moves the record store into a Path without keeping a snapshot.
func (s *Stepper[NodeType]) takePath() (*Path[NodeType], bool) {
	if s.state != StateSucceeded || s.records == nil {
		return nil, false
	}
	path := newPath(s.records, s.goal, s.start)
	s.records = nil
	return path, true
}

func (s *Stepper[NodeType]) snapshot() StepSnapshot[NodeType] {
	if s.final != nil {
		snapshot := *s.final
		snapshot.Open = maps.Clone(s.final.Open)
		snapshot.Closed = maps.Clone(s.final.Closed)
		snapshot.CameFrom = maps.Clone(s.final.CameFrom)
		snapshot.Path = slices.Clone(s.final.Path)
		return snapshot
	}
	snapshot := StepSnapshot[NodeType]{
		Current:   s.current,
		Open:      s.openNodes(),
		Closed:    make(map[NodeType]bool, len(s.closed)),
		CameFrom:  make(map[NodeType]NodeType, len(s.records)),
		Done:      s.Done(),
		Found:     s.state == StateSucceeded,
		StepIndex: s.stepCount,
	}
	for node := range s.closed {
		snapshot.Closed[node] = true
	}
	for node, record := range s.records {
		if node != s.start {
			snapshot.CameFrom[node] = record.parent
		}
	}
	if snapshot.Found {
		snapshot.Path = internal.ReconstructPath(s.parentOf, s.goal, s.start)
	}
	return snapshot
}

func (s *Stepper[NodeType]) openNodes() map[NodeType]bool {
	open := s.open.nodes()
	maps.DeleteFunc(open, func(node NodeType, _ bool) bool { return s.closed.contains(node) })
	return open
}

func (s *Stepper[NodeType]) parentOf(node NodeType) (NodeType, bool) {
	record, ok := s.records.get(node)
	return record.parent, ok
}

func (s *Stepper[NodeType]) logSummary() {
	s.options.Logger.Debug("astar: search finished",
		"state", s.state,
		"expanded", s.expanded,
		"open", s.open.Len(),
		"closed", len(s.closed),
		"records", len(s.records),
	)
}
