package pathfinder

import "time"

// FindAllReachable returns every node whose cost from start is at most maxCost, start included.
//
// The search is a cost-conscious breadth-first expansion over a plain FIFO queue.
// When a cheaper cost is found for a node that was already reached, the node is
// queued again and re-expanded with the new cost. Nodes can therefore be processed
// out of cost order; the returned set is still every node within maxCost.
//
// maxCost is inclusive. A negative or NaN maxCost is ErrInvalidInput.
func FindAllReachable[NodeType comparable](
	graph Graph[NodeType],
	mover Mover[NodeType],
	start NodeType,
	maxCost float64,
	options ...Option,
) (Set[NodeType], error) {
	searchOptions := newOptions(options)
	began := time.Now()
	err := validate(graph, mover, start)
	if err == nil {
		err = validCostBound(maxCost)
	}
	if err != nil {
		searchOptions.record(QueryReachable, OutcomeInvalid, 0, began)
		return Set[NodeType]{}, err
	}

	table := stateTable[NodeType]{}
	table.entry(start).g = 0
	reachable := Set[NodeType]{}
	reachable.Add(start)
	queue := []NodeType{start}
	expanded := 0

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		expanded++
		nodeCost := table.g(node)

		for _, adjacent := range graph.Adjacent(node) {
			if !mover.Passable(node, adjacent) {
				continue
			}
			cost := nodeCost + mover.CostForMove(node, adjacent)
			if cost > maxCost {
				continue
			}
			if cost < table.g(adjacent) && reachable.Has(adjacent) {
				reachable.Delete(adjacent) // Cheaper route, expand it again.
			}
			if !reachable.Has(adjacent) {
				table.entry(adjacent).g = cost
				reachable.Add(adjacent)
				queue = append(queue, adjacent)
			}
		}
	}

	searchOptions.record(QueryReachable, OutcomeFound, expanded, began)
	searchOptions.Logger.V(1).Info("Found reachable", "start", start, "maxCost", maxCost, "reachable", reachable.Len(), "expanded", expanded)
	return reachable, nil
}
