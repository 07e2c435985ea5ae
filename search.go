package pathfinder

import (
	"github.com/go-logr/logr"
	"github.com/pdrpinto/pathfinder/internal"
)

// search is the working state of one A* call. It is never shared between calls.
type search[NodeType comparable] struct {
	graph         Graph[NodeType]
	mover         Mover[NodeType]
	start, target NodeType
	log           logr.Logger

	table  stateTable[NodeType]
	open   *PriorityQueue[NodeType]
	closed Set[NodeType]

	current  NodeType // last popped node, the target once found
	expanded int
	done     bool
	found    bool
}

func newSearch[NodeType comparable](
	graph Graph[NodeType],
	mover Mover[NodeType],
	start, target NodeType,
	log logr.Logger,
) *search[NodeType] {
	s := &search[NodeType]{
		graph:   graph,
		mover:   mover,
		start:   start,
		target:  target,
		log:     log,
		table:   stateTable[NodeType]{},
		open:    newPriorityQueue[NodeType](),
		closed:  Set[NodeType]{},
		current: start,
	}
	s.table.entry(start).g = 0
	if start == target {
		s.done, s.found = true, true
		return s
	}
	s.open.push(start, 0)
	return s
}

// step pops the cheapest pending node. Unless it is the target, the node is closed
// and its passable neighbors are relaxed.
//
// A strictly cheaper route to a neighbor evicts it from both the open and closed sets,
// so a settled node can be reopened.
func (s *search[NodeType]) step() {
	if s.done {
		return
	}
	current := s.open.pop()
	s.current = current
	if current == s.target {
		s.done, s.found = true, true
		return
	}
	s.expanded++
	s.closed.Add(current)
	currentG := s.table.g(current)

	for _, adjacent := range s.graph.Adjacent(current) {
		if !s.mover.Passable(current, adjacent) {
			continue
		}
		cost := currentG + s.mover.CostForMove(current, adjacent)
		if cost < s.table.g(adjacent) {
			s.open.remove(adjacent)
			s.closed.Delete(adjacent)
		}
		if !s.open.Contains(adjacent) && !s.closed.Has(adjacent) {
			state := s.table.entry(adjacent)
			state.g = cost
			state.h = s.mover.Heuristic(adjacent, s.target, s.start)
			state.parent, state.hasParent = current, true
			s.open.push(adjacent, state.f())
		}
	}
	s.log.V(3).Info("Expanded", "node", current, "g", currentG, "open", s.open.Len(), "closed", s.closed.Len())

	if s.open.Len() == 0 {
		s.done = true
	}
}

// path is only meaningful once found is true.
func (s *search[NodeType]) path() []NodeType {
	return internal.ReconstructPath(s.table.parentOf, s.current)
}
