package pathfinder

import "container/heap"

// PriorityQueueItem is a pending node in the open set.
type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue is a container/heap min-queue keyed by FCost.
// Items with equal FCost pop in the order they were pushed.
type PriorityQueue[NodeType comparable] struct {
	items    []*PriorityQueueItem[NodeType]
	index    map[NodeType]*PriorityQueueItem[NodeType]
	sequence uint64
}

func newPriorityQueue[NodeType comparable]() *PriorityQueue[NodeType] {
	return &PriorityQueue[NodeType]{index: make(map[NodeType]*PriorityQueueItem[NodeType])}
}

func (queue *PriorityQueue[NodeType]) Len() int { return len(queue.items) }

func (queue *PriorityQueue[NodeType]) Less(i, j int) bool {
	a, b := queue.items[i], queue.items[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	return a.Sequence < b.Sequence
}

func (queue *PriorityQueue[NodeType]) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.items[i].IndexInQueue = i
	queue.items[j].IndexInQueue = j
}

// Push implements heap.Interface, use heap.Push.
func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(queue.items)
	queue.items = append(queue.items, item)
	queue.index[item.Node] = item
}

// Pop implements heap.Interface, use heap.Pop.
func (queue *PriorityQueue[NodeType]) Pop() any {
	oldItems := queue.items
	n := len(oldItems)
	item := oldItems[n-1]
	oldItems[n-1] = nil
	queue.items = oldItems[:n-1]
	item.IndexInQueue = -1
	delete(queue.index, item.Node)
	return item
}

// newItem stamps a fresh insertion sequence on node.
func (queue *PriorityQueue[NodeType]) newItem(node NodeType, fCost float64) *PriorityQueueItem[NodeType] {
	queue.sequence++
	return &PriorityQueueItem[NodeType]{Node: node, FCost: fCost, Sequence: queue.sequence}
}

// Contains reports whether node is pending.
func (queue *PriorityQueue[NodeType]) Contains(node NodeType) bool {
	_, ok := queue.index[node]
	return ok
}

// Nodes returns the pending nodes in heap order.
func (queue *PriorityQueue[NodeType]) Nodes() []NodeType {
	nodes := make([]NodeType, len(queue.items))
	for i, item := range queue.items {
		nodes[i] = item.Node
	}
	return nodes
}

func (queue *PriorityQueue[NodeType]) push(node NodeType, fCost float64) {
	heap.Push(queue, queue.newItem(node, fCost))
}

func (queue *PriorityQueue[NodeType]) pop() NodeType {
	return heap.Pop(queue).(*PriorityQueueItem[NodeType]).Node
}

// remove drops node from the queue, it is a no-op when node is not pending.
func (queue *PriorityQueue[NodeType]) remove(node NodeType) {
	if item, ok := queue.index[node]; ok {
		heap.Remove(queue, item.IndexInQueue)
	}
}
