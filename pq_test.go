package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue_TiesPopInInsertionOrder(t *testing.T) {
	q := newPriorityQueue[string]()
	q.push("b", 2)
	q.push("x", 1)
	q.push("y", 1)
	q.push("a", 0)
	q.push("z", 1)
	var got []string
	for q.Len() > 0 {
		got = append(got, q.pop())
	}
	assert.Equal(t, []string{"a", "x", "y", "z", "b"}, got)
}

func TestPriorityQueue_Remove(t *testing.T) {
	q := newPriorityQueue[string]()
	for i, n := range []string{"a", "b", "c", "d"} {
		q.push(n, float64(i))
	}
	assert.True(t, q.Contains("c"))
	q.remove("c")
	q.remove("missing")
	assert.False(t, q.Contains("c"))
	assert.ElementsMatch(t, []string{"a", "b", "d"}, q.Nodes())

	// A removed node pushed again queues behind existing ties.
	q.push("c", 1)
	var got []string
	for q.Len() > 0 {
		got = append(got, q.pop())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.False(t, q.Contains("a"))
}
