// Package oracle computes reference shortest-path costs with gonum's Dijkstra,
// to check the results of the pathfinder engine.
package oracle

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the subset of pathfinder.Graph used here.
type Graph[NodeType comparable] interface {
	Adjacent(node NodeType) []NodeType
}

// Mover is the subset of pathfinder.Mover used here.
type Mover[NodeType comparable] interface {
	CostForMove(node, adjacent NodeType) float64
	Passable(node, adjacent NodeType) bool
}

// Oracle holds exact shortest costs from one start node over the passable edges of a graph.
// It is a snapshot: later changes to the graph or mover are not seen.
type Oracle[NodeType comparable] struct {
	ids      map[NodeType]int64
	nodes    []NodeType
	shortest path.Shortest
}

// New copies every passable edge reachable from start into a gonum weighted
// directed graph and runs Dijkstra from start.
func New[NodeType comparable](g Graph[NodeType], m Mover[NodeType], start NodeType) *Oracle[NodeType] {
	weighted := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	o := &Oracle[NodeType]{ids: map[NodeType]int64{}}
	id := func(n NodeType) int64 {
		if v, ok := o.ids[n]; ok {
			return v
		}
		v := int64(len(o.nodes))
		o.ids[n] = v
		o.nodes = append(o.nodes, n)
		weighted.AddNode(simple.Node(v))
		return v
	}
	id(start)
	for i := 0; i < len(o.nodes); i++ { // o.nodes grows as nodes are discovered.
		from := o.nodes[i]
		for _, to := range g.Adjacent(from) {
			if from == to || !m.Passable(from, to) {
				continue
			}
			u, v := id(from), id(to)
			weighted.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: m.CostForMove(from, to)})
		}
	}
	o.shortest = path.DijkstraFrom(simple.Node(0), weighted)
	return o
}

// Cost is the cheapest cost from start to target, +Inf if there is no path.
func (o *Oracle[NodeType]) Cost(target NodeType) float64 {
	v, ok := o.ids[target]
	if !ok {
		return math.Inf(1)
	}
	return o.shortest.WeightTo(v)
}

// Path is one cheapest path from start to target and its cost, nil if there is none.
func (o *Oracle[NodeType]) Path(target NodeType) ([]NodeType, float64) {
	v, ok := o.ids[target]
	if !ok {
		return nil, math.Inf(1)
	}
	nodes, weight := o.shortest.To(v)
	if len(nodes) == 0 {
		return nil, weight
	}
	result := make([]NodeType, len(nodes))
	for i, n := range nodes {
		result[i] = o.nodes[n.ID()]
	}
	return result, weight
}

// Within returns every node whose cheapest cost from start is at most maxCost.
func (o *Oracle[NodeType]) Within(maxCost float64) []NodeType {
	var within []NodeType
	for v, n := range o.nodes {
		if o.shortest.WeightTo(int64(v)) <= maxCost {
			within = append(within, n)
		}
	}
	return within
}
