package causal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/admg/causal"
)

// TestNodeSet covers membership, union freshness and sorted output.
func TestNodeSet(t *testing.T) {
	s := causal.NewNodeSet("b", "a")
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())

	other := causal.NewNodeSet("c")
	u := s.Union(other, nil)
	assert.Equal(t, []string{"a", "b", "c"}, u.Sorted())
	// inputs stay untouched
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
	assert.Equal(t, []string{"c"}, other.Sorted())

	// the zero value is a usable empty set
	var zero causal.NodeSet
	assert.False(t, zero.Contains("a"))
	assert.Empty(t, zero.Sorted())
}
