package ordsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/ordsearch"
)

// rotate returns s rotated left by p positions (s[p] becomes the head).
func rotate(s []int, p int) []int {
	out := make([]int, 0, len(s))
	out = append(out, s[p:]...)

	return append(out, s[:p]...)
}

func TestSearchRotated_Scenario(t *testing.T) {
	s := []int{4, 5, 6, 7, 0, 1, 2}
	assert.Equal(t, 4, ordsearch.SearchRotated(s, 0))
	assert.Equal(t, 0, ordsearch.SearchRotated(s, 4))
	assert.Equal(t, 6, ordsearch.SearchRotated(s, 2))
	assert.Equal(t, ordsearch.NotFound, ordsearch.SearchRotated(s, 3))
	assert.Equal(t, ordsearch.NotFound, ordsearch.SearchRotated(s, 8))
}

func TestSearchRotated_Empty(t *testing.T) {
	assert.Equal(t, ordsearch.NotFound, ordsearch.SearchRotated([]int{}, 1))
	assert.Equal(t, ordsearch.NotFound, ordsearch.SearchRotated([]int(nil), 1))
}

// TestSearchRotated_EveryPivot checks every rotation of ascending distinct
// slices of several lengths, for every present and several absent targets.
func TestSearchRotated_EveryPivot(t *testing.T) {
	for n := 1; n <= 12; n++ {
		base := make([]int, n)
		for i := range base {
			base[i] = 3 * i // gaps leave room for absent targets
		}
		for p := 0; p < n; p++ {
			s := rotate(base, p)
			require.NoError(t, ordsearch.ValidateRotated(s))

			for want, v := range s {
				assert.Equal(t, want, ordsearch.SearchRotated(s, v), "n=%d pivot=%d target=%d", n, p, v)
			}
			for _, absent := range []int{-1, 1, 3*n - 2, 3 * n} {
				assert.Equal(t, ordsearch.NotFound, ordsearch.SearchRotated(s, absent), "n=%d pivot=%d absent=%d", n, p, absent)
			}
		}
	}
}

// TestSearchRotated_Duplicates documents that duplicates give an unspecified
// result: either a matching index or NotFound, never a panic.
func TestSearchRotated_Duplicates(t *testing.T) {
	s := []int{1, 1, 1, 2, 1}
	require.ErrorIs(t, ordsearch.ValidateRotated(s), ordsearch.ErrDuplicate)

	i := ordsearch.SearchRotated(s, 2)
	if i != ordsearch.NotFound {
		assert.Equal(t, 2, s[i])
	}
}
