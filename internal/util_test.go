package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	parents := map[string]string{"t": "b", "b": "a", "a": "s"}
	parentOf := func(n string) (string, bool) {
		p, ok := parents[n]
		return p, ok
	}
	assert.Equal(t, []string{"s", "a", "b", "t"}, ReconstructPath(parentOf, "t"))
	assert.Equal(t, []string{"s"}, ReconstructPath(parentOf, "s"))
}

func TestReverse(t *testing.T) {
	for _, x := range []struct{ in, want []int }{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
	} {
		Reverse(x.in)
		assert.Equal(t, x.want, x.in)
	}
}
