package astar

import "container/heap"

// PriorityQueueItem is one frontier entry. Several items may carry the same
// Node; the record store, not the queue, holds the current cost of a node.
type PriorityQueueItem[NodeType comparable] struct {
	Node  NodeType
	FCost float64
	// Sequence is the insertion order, used to break FCost ties first-in first-out.
	Sequence uint64
}

type PriorityQueue[NodeType comparable] []PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[NodeType]) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem[NodeType]))
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// frontier is the open list. It never updates entries in place: a cheaper
// route to a node is pushed as a new entry and the old one goes stale.
type frontier[NodeType comparable] struct {
	queue    PriorityQueue[NodeType]
	sequence uint64
}

func newFrontier[NodeType comparable]() *frontier[NodeType] {
	f := &frontier[NodeType]{queue: make(PriorityQueue[NodeType], 0)}
	heap.Init(&f.queue)
	return f
}

func (f *frontier[NodeType]) push(fCost float64, node NodeType) {
	heap.Push(&f.queue, PriorityQueueItem[NodeType]{Node: node, FCost: fCost, Sequence: f.sequence})
	f.sequence++
}

func (f *frontier[NodeType]) popMin() (float64, NodeType, bool) {
	if f.queue.Len() == 0 {
		var zero NodeType
		return 0, zero, false
	}
	item := heap.Pop(&f.queue).(PriorityQueueItem[NodeType])
	return item.FCost, item.Node, true
}

func (f *frontier[NodeType]) Len() int { return f.queue.Len() }

// nodes returns the distinct nodes that still have at least one entry queued.
func (f *frontier[NodeType]) nodes() map[NodeType]bool {
	m := make(map[NodeType]bool, len(f.queue))
	for _, item := range f.queue {
		m[item.Node] = true
	}
	return m
}
