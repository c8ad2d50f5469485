package astar

// nodeRecord is the best known cost of a node and the node it was reached from.
type nodeRecord[NodeType comparable] struct {
	g      float64
	f      float64
	parent NodeType
}

// newNodeRecord takes the accumulated cost g and the heuristic estimate h.
func newNodeRecord[NodeType comparable](g, h float64, parent NodeType) nodeRecord[NodeType] {
	return nodeRecord[NodeType]{g: g, f: g + h, parent: parent}
}

// recordStore maps every discovered node to its record. Records are replaced,
// never removed, while a search runs.
type recordStore[NodeType comparable] map[NodeType]nodeRecord[NodeType]

func (s recordStore[NodeType]) get(node NodeType) (nodeRecord[NodeType], bool) {
	record, ok := s[node]
	return record, ok
}

func (s recordStore[NodeType]) put(node NodeType, record nodeRecord[NodeType]) {
	s[node] = record
}
