// Package pathfinder provides a generic graph search engine.
//
// It answers two queries over any graph of comparable nodes:
//
//   - FindPath: the cheapest path between two nodes, by A* search.
//   - FindAllReachable: every node within a cost budget of a start node.
//
// All domain knowledge (step costs, the heuristic and which steps are allowed)
// comes from a caller-supplied Mover. The engine owns only the transient search
// state, which lives for a single call, so one graph can serve many searches,
// including concurrent ones through FindPaths.
//
// Stepper drives the FindPath search one expansion at a time for debugging tools.
// CostOfPath re-derives the cost of a path found earlier.
package pathfinder
