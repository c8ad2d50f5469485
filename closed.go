package astar

// closedSet holds the nodes that have been popped from the frontier.
type closedSet[NodeType comparable] map[NodeType]struct{}

func (c closedSet[NodeType]) insert(node NodeType) { c[node] = struct{}{} }

func (c closedSet[NodeType]) contains(node NodeType) bool {
	_, ok := c[node]
	return ok
}
