package oracle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type graph map[string][]string

func (g graph) Adjacent(node string) []string { return g[node] }

type edge struct{ from, to string }

type mover map[edge]float64

func (m mover) CostForMove(node, adjacent string) float64 { return m[edge{node, adjacent}] }
func (m mover) Passable(node, adjacent string) bool {
	_, ok := m[edge{node, adjacent}]
	return ok
}

func TestOracle(t *testing.T) {
	g := graph{
		"s": {"a", "b", "s"},
		"a": {"t"},
		"b": {"a", "t"},
		"t": {"x"}, // t->x is not passable
		"u": {"t"}, // u is unreachable
	}
	m := mover{
		{"s", "a"}: 5, {"s", "b"}: 1, {"b", "a"}: 1,
		{"a", "t"}: 1, {"b", "t"}: 4, {"u", "t"}: 1,
	}
	o := New[string](g, m, "s")

	assert.Equal(t, 0.0, o.Cost("s"))
	assert.Equal(t, 2.0, o.Cost("a"))
	assert.Equal(t, 3.0, o.Cost("t"))
	assert.True(t, math.IsInf(o.Cost("u"), 1))
	assert.True(t, math.IsInf(o.Cost("x"), 1))

	path, cost := o.Path("t")
	assert.Equal(t, []string{"s", "b", "a", "t"}, path)
	assert.Equal(t, 3.0, cost)
	path, cost = o.Path("u")
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))

	assert.ElementsMatch(t, []string{"s", "b"}, o.Within(1))
	assert.ElementsMatch(t, []string{"s", "b", "a", "t"}, o.Within(3))
}
