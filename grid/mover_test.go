package grid

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMover_CostForMove(t *testing.T) {
	g, err := Parse(`
..
.#`, Eight)
	require.NoError(t, err)
	m := NewMover(g)
	a, b, c, d := mustAt(t, g, 0, 0), mustAt(t, g, 1, 0), mustAt(t, g, 0, 1), mustAt(t, g, 1, 1)
	assert.Equal(t, DefaultOrthogonalCost, m.CostForMove(a, b))
	assert.Equal(t, DefaultOrthogonalCost, m.CostForMove(a, c))
	assert.Equal(t, DefaultDiagonalCost, m.CostForMove(b, c))
	// Leaving a closed cell is allowed.
	assert.Equal(t, DefaultDiagonalCost, m.CostForMove(d, a))

	m = NewMover(g, WithCosts(2, 3))
	assert.Equal(t, 2.0, m.CostForMove(a, b))
	assert.Equal(t, 3.0, m.CostForMove(b, c))
}

func TestMover_CostIntoClosedIsLogged(t *testing.T) {
	g, err := Parse(".#", Four)
	require.NoError(t, err)
	var logged []string
	log := funcr.New(func(prefix, args string) { logged = append(logged, args) }, funcr.Options{})
	m := NewMover(g, WithLogger(log))

	assert.Equal(t, 0.0, m.CostForMove(mustAt(t, g, 0, 0), mustAt(t, g, 1, 0)))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Unhandled cell types for move")
	assert.Contains(t, logged[0], `"toType"`)
}

func TestMover_Passable(t *testing.T) {
	g, err := Parse(`
...
.#.
...`, Eight)
	require.NoError(t, err)
	center := mustAt(t, g, 1, 1)
	topLeft, top, left := mustAt(t, g, 0, 0), mustAt(t, g, 1, 0), mustAt(t, g, 0, 1)
	topRight := mustAt(t, g, 2, 0)

	for _, x := range []struct {
		rule     DiagonalRule
		from, to NodeID
		want     bool
	}{
		{NoCornerCutting, topLeft, top, true},
		{NoCornerCutting, topLeft, center, false},  // closed destination
		{NoCornerCutting, left, top, false},        // cuts the closed center
		{NoCornerCutting, center, topRight, true},  // corners (2,1) and (1,0) are open
		{CornerCutting, left, top, true},
		{CornerCutting, topLeft, center, false},
		{OrthogonalOnly, center, topRight, false},
		{OrthogonalOnly, topLeft, left, true},
	} {
		t.Run(x.rule.String(), func(t *testing.T) {
			m := NewMover(g, WithDiagonals(x.rule))
			assert.Equal(t, x.want, m.Passable(x.from, x.to), "%v -> %v", g.Coord(x.from), g.Coord(x.to))
		})
	}
}

func TestMover_Heuristic(t *testing.T) {
	g, err := New(5, 5, Eight)
	require.NoError(t, err)
	start, target := mustAt(t, g, 0, 0), mustAt(t, g, 4, 2)

	m := NewMover(g, WithTieBreak(0))
	// Octile: 2 diagonal + 2 orthogonal steps.
	assert.InDelta(t, 2*1.4+2*1.0, m.Heuristic(start, target, start), 1e-9)
	assert.Equal(t, 0.0, m.Heuristic(target, target, start))

	// (4,0) is off the start-target line: |(0*-2) - (-4*-2)| = 8.
	m = NewMover(g)
	off := mustAt(t, g, 4, 0)
	assert.InDelta(t, 2*1.0+8*DefaultTieBreak, m.Heuristic(off, target, start), 1e-9)
	// On the line the extra term is zero.
	on := mustAt(t, g, 2, 1)
	assert.InDelta(t, 1.4+1.0, m.Heuristic(on, target, start), 1e-9)
}

func TestParseDiagonalRule(t *testing.T) {
	for _, rule := range []DiagonalRule{NoCornerCutting, OrthogonalOnly, CornerCutting} {
		got, err := ParseDiagonalRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}
	got, err := ParseDiagonalRule("")
	require.NoError(t, err)
	assert.Equal(t, NoCornerCutting, got)
	_, err = ParseDiagonalRule("sideways")
	assert.Error(t, err)
	assert.Equal(t, "DiagonalRule(9)", DiagonalRule(9).String())
}

func TestMover_HeuristicWithUnusualCosts(t *testing.T) {
	g, err := New(5, 5, Eight)
	require.NoError(t, err)
	from, to := mustAt(t, g, 0, 0), mustAt(t, g, 4, 2)
	for _, x := range []struct {
		orthogonal, diagonal, want float64
	}{
		{1, 1.5, 2*1.5 + 2*1},
		{1, 3, 6},   // a diagonal costs no less than two orthogonal steps
		{1, 0.5, 2}, // four steps at the diagonal cost
		{2, 0, 0},
	} {
		m := NewMover(g, WithCosts(x.orthogonal, x.diagonal), WithTieBreak(0))
		assert.InDelta(t, x.want, m.Heuristic(from, to, from), 1e-9, "%v/%v", x.orthogonal, x.diagonal)
	}
}
