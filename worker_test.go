package pathfinder

import (
	"context"
	"testing"

	"github.com/pdrpinto/pathfinder/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPairs(g *grid.Grid) []PathRequest[grid.NodeID] {
	var requests []PathRequest[grid.NodeID]
	for _, start := range g.Nodes() {
		for _, target := range g.Nodes() {
			requests = append(requests, PathRequest[grid.NodeID]{Start: start, Target: target})
		}
	}
	return requests
}

func TestFindPaths_MatchesSequential(t *testing.T) {
	g, m := layout(t, `
.....
.##..
...#.
.#...`)
	requests := allPairs(g)
	responses, err := FindPaths(context.Background(), g, m, requests, WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, responses, len(requests))
	for i, response := range responses {
		assert.Equal(t, requests[i], response.Request)
		want, wantErr := FindPath(g, m, response.Request.Start, response.Request.Target)
		assert.Equal(t, want, response.Result)
		assert.Equal(t, wantErr, response.Err)
	}
}

func TestFindPaths_Canceled(t *testing.T) {
	g, m := layout(t, `
...
...`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	responses, err := FindPaths(ctx, g, m, allPairs(g), WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, responses, g.Len()*g.Len())
}

func TestFindPaths_Records(t *testing.T) {
	g, m := layout(t, `
..#
..#
###`)
	requests := []PathRequest[grid.NodeID]{
		{Start: at(t, g, 0, 0), Target: at(t, g, 1, 1)},
		{Start: at(t, g, 0, 0), Target: at(t, g, 2, 2)},
		{Start: at(t, g, 0, 0), Target: grid.NodeID(99)},
	}
	recorder := &countingRecorder{stats: make(chan SearchStats, len(requests))}
	responses, err := FindPaths(context.Background(), g, m, requests, WithWorkers(3), WithRecorder(recorder))
	require.NoError(t, err)
	assert.NoError(t, responses[0].Err)
	assert.ErrorIs(t, responses[1].Err, ErrNoPath)
	assert.ErrorIs(t, responses[2].Err, ErrInvalidInput)

	close(recorder.stats)
	outcomes := map[Outcome]int{}
	for stats := range recorder.stats {
		assert.Equal(t, QueryPath, stats.Query)
		outcomes[stats.Outcome]++
	}
	assert.Equal(t, map[Outcome]int{OutcomeFound: 1, OutcomeNoPath: 1, OutcomeInvalid: 1}, outcomes)
}
