package pathfinder

import (
	"testing"

	"github.com/pdrpinto/pathfinder/grid"
	"github.com/stretchr/testify/require"
)

// testGraph is a directed graph of named nodes.
type testGraph map[string][]string

func (g testGraph) Adjacent(node string) []string { return g[node] }
func (g testGraph) Contains(node string) bool {
	_, ok := g[node]
	return ok
}

type edge struct{ from, to string }

// testMover takes costs from a table and a fixed heuristic per node.
type testMover struct {
	cost    map[edge]float64
	h       map[string]float64
	blocked map[edge]bool
}

func (m *testMover) Heuristic(node, target, start string) float64 { return m.h[node] }
func (m *testMover) CostForMove(node, adjacent string) float64    { return m.cost[edge{node, adjacent}] }
func (m *testMover) Passable(node, adjacent string) bool          { return !m.blocked[edge{node, adjacent}] }

// undirected builds a graph and mover from (from, to, cost) triples, adding both directions.
func undirected(triples ...any) (testGraph, *testMover) {
	g := testGraph{}
	m := &testMover{cost: map[edge]float64{}, h: map[string]float64{}, blocked: map[edge]bool{}}
	for i := 0; i < len(triples); i += 3 {
		a, b, c := triples[i].(string), triples[i+1].(string), triples[i+2].(float64)
		g[a] = append(g[a], b)
		g[b] = append(g[b], a)
		m.cost[edge{a, b}], m.cost[edge{b, a}] = c, c
	}
	return g, m
}

// layout parses an eight-connected grid with the default mover.
func layout(t *testing.T, text string, options ...grid.MoverOption) (*grid.Grid, *grid.Mover) {
	t.Helper()
	g, err := grid.Parse(text, grid.Eight)
	require.NoError(t, err)
	return g, grid.NewMover(g, options...)
}

func at(t *testing.T, g *grid.Grid, x, y int) grid.NodeID {
	t.Helper()
	id, ok := g.At(x, y)
	require.True(t, ok, "%v,%v", x, y)
	return id
}

func coordsOf(g *grid.Grid, nodes []grid.NodeID) []grid.Coord {
	result := make([]grid.Coord, len(nodes))
	for i, n := range nodes {
		result[i] = g.Coord(n)
	}
	return result
}

// randomGrids returns a spread of small grids with clustered closed cells.
func randomGrids(t *testing.T, n int) []*grid.Grid {
	t.Helper()
	var grids []*grid.Grid
	for seed := int64(1); seed <= int64(n); seed++ {
		connectivity := grid.Eight
		if seed%4 == 0 {
			connectivity = grid.Four
		}
		g, err := grid.Random(5, 5, grid.RandomOptions{
			Connectivity: connectivity,
			Clusters:     3,
			Steps:        6,
			Density:      0.5,
			Seed:         seed,
		})
		require.NoError(t, err)
		grids = append(grids, g)
	}
	return grids
}

type countingRecorder struct {
	stats chan SearchStats
}

func (r *countingRecorder) RecordSearch(stats SearchStats) { r.stats <- stats }
