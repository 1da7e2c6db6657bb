package comm

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(s Set[string]) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestSet_Algebra(t *testing.T) {
	a := NewSet("a", "b", "a", "c")
	b := NewSet("b", "c", "d")

	assert.Len(t, a, 3)
	assert.Equal(t, []string{"a"}, keys(a.Difference(b)))
	assert.Equal(t, []string{"d"}, keys(b.Difference(a)))
	assert.Equal(t, []string{"b", "c"}, keys(a.Intersection(b)))
	assert.Equal(t, []string{"b", "c"}, keys(b.Intersection(a)))
}

func TestSet_Empty(t *testing.T) {
	empty := NewSet[string]()
	a := NewSet("x")

	assert.Empty(t, empty.Difference(a))
	assert.Equal(t, []string{"x"}, keys(a.Difference(empty)))
	assert.Empty(t, a.Intersection(empty))
	assert.False(t, empty.Has("x"))
}
