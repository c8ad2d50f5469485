package internal

import "slices"

// ReconstructPath follows parent links from current back to start and returns
// the route in forward order, start first. The walk stops early at a node
// without a parent.
func ReconstructPath[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := parentOf(current)
		if !exists || previousNode == current {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	slices.Reverse(path)
	return path
}
