package pathfinder

import "math"

// searchState is the per-node record kept for the duration of one search call.
type searchState[NodeType comparable] struct {
	g         float64 // best known cost from the start
	h         float64 // heuristic estimate to the target, path search only
	parent    NodeType
	hasParent bool
}

func (state *searchState[NodeType]) f() float64 { return state.g + state.h }

// stateTable holds search state by node. Entries are created on first discovery.
type stateTable[NodeType comparable] map[NodeType]*searchState[NodeType]

func (table stateTable[NodeType]) entry(node NodeType) *searchState[NodeType] {
	state, ok := table[node]
	if !ok {
		state = &searchState[NodeType]{g: math.Inf(1)}
		table[node] = state
	}
	return state
}

// g is the best known cost to node, +Inf if node has not been discovered.
func (table stateTable[NodeType]) g(node NodeType) float64 {
	if state, ok := table[node]; ok {
		return state.g
	}
	return math.Inf(1)
}

func (table stateTable[NodeType]) parentOf(node NodeType) (parent NodeType, ok bool) {
	if state, found := table[node]; found && state.hasParent {
		return state.parent, true
	}
	return parent, false
}

func (table stateTable[NodeType]) cameFrom() map[NodeType]NodeType {
	links := make(map[NodeType]NodeType, len(table))
	for node, state := range table {
		if state.hasParent {
			links[node] = state.parent
		}
	}
	return links
}
