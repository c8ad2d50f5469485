package astar

import (
	"fmt"
	"iter"
	"maps"

	"github.com/pdrpinto/astarkit/internal"
)

// Path is the result of a successful search. It walks parent links backwards
// from the goal and yields every node up to, but not including, the start:
// goal first, the start's successor last.
//
// A Path owns the complete record store of the search that produced it, not
// only the nodes on the route. It is consumed by iteration and cannot be
// rewound; use Clone before consuming it to iterate more than once.
type Path[NodeType comparable] struct {
	to      NodeType
	next    NodeType
	goal    NodeType
	records recordStore[NodeType]
}

func newPath[NodeType comparable](records recordStore[NodeType], goal, start NodeType) *Path[NodeType] {
	return &Path[NodeType]{
		to:      start,
		next:    goal,
		goal:    goal,
		records: records,
	}
}

// Next returns the next node of the path, or false once the start is reached.
func (p *Path[NodeType]) Next() (NodeType, bool) {
	if p.next == p.to {
		var zero NodeType
		return zero, false
	}
	result := p.next
	record, ok := p.records.get(result)
	if !ok {
		panic(fmt.Sprintf("astar: path node %v has no record", result))
	}
	p.next = record.parent
	return result, true
}

// All returns a single-use sequence over the remaining nodes.
func (p *Path[NodeType]) All() iter.Seq[NodeType] {
	return func(yield func(NodeType) bool) {
		for {
			node, ok := p.Next()
			if !ok || !yield(node) {
				return
			}
		}
	}
}

// Collect consumes the path and returns the remaining nodes.
func (p *Path[NodeType]) Collect() []NodeType {
	var nodes []NodeType
	for node := range p.All() {
		nodes = append(nodes, node)
	}
	return nodes
}

// Goal returns the goal node the search arrived at.
func (p *Path[NodeType]) Goal() NodeType { return p.goal }

// Start returns the node the search started from.
func (p *Path[NodeType]) Start() NodeType { return p.to }

// Explored returns the number of node records the path retains.
func (p *Path[NodeType]) Explored() int { return len(p.records) }

// Clone returns an independent copy of the path at its current position.
func (p *Path[NodeType]) Clone() *Path[NodeType] {
	return &Path[NodeType]{
		to:      p.to,
		next:    p.next,
		goal:    p.goal,
		records: maps.Clone(p.records),
	}
}

// Trim drops every record that is not on the remaining route.
func (p *Path[NodeType]) Trim() {
	trimmed := make(recordStore[NodeType])
	for node := p.next; node != p.to; {
		record, ok := p.records.get(node)
		if !ok {
			break
		}
		trimmed.put(node, record)
		node = record.parent
	}
	p.records = trimmed
}

// Route returns the remaining route in forward order, from the start to the
// goal, both included. It does not consume the path.
func (p *Path[NodeType]) Route() []NodeType {
	return internal.ReconstructPath(p.parentOf, p.next, p.to)
}

// Cost sums edgeCost over the consecutive pairs of Route.
func (p *Path[NodeType]) Cost(edgeCost EdgeCost[NodeType]) float64 {
	route := p.Route()
	var total float64
	for i := 1; i < len(route); i++ {
		total += edgeCost(route[i-1], route[i])
	}
	return total
}

func (p *Path[NodeType]) parentOf(node NodeType) (NodeType, bool) {
	record, ok := p.records.get(node)
	return record.parent, ok
}
