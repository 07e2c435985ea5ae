package pathfinder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PathRequest is one start/target pair for FindPaths.
type PathRequest[NodeType comparable] struct {
	Start  NodeType
	Target NodeType
}

// PathResponse is the FindPath outcome for a PathRequest.
type PathResponse[NodeType comparable] struct {
	Request PathRequest[NodeType]
	Result  Result[NodeType]
	Err     error
}

// FindPaths runs independent FindPath searches on a pool of WithWorkers goroutines.
//
// graph and mover are shared by all workers and must be safe for concurrent reads;
// every search keeps its own state. Responses are in request order.
//
// ctx is checked before each search starts. A search that has started runs to
// completion. If ctx is canceled the unstarted requests have zero responses and
// the context error is returned.
func FindPaths[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	mover Mover[NodeType],
	requests []PathRequest[NodeType],
	options ...Option,
) ([]PathResponse[NodeType], error) {
	searchOptions := newOptions(options)
	responses := make([]PathResponse[NodeType], len(requests))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(max(searchOptions.NumberOfWorkers, 1))
	for i, request := range requests {
		if groupContext.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := FindPath(graph, mover, request.Start, request.Target, options...)
			responses[i] = PathResponse[NodeType]{Request: request, Result: result, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return responses, err
	}
	// Searches that started all finished; the rest were never scheduled.
	if err := contextObject.Err(); err != nil && !allAnswered(responses) {
		return responses, err
	}
	return responses, nil
}

func allAnswered[NodeType comparable](responses []PathResponse[NodeType]) bool {
	for _, response := range responses {
		if !response.Result.Found && response.Err == nil {
			return false
		}
	}
	return true
}
