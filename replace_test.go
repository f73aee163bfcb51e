package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clayscope/slices"
)

func TestReplaceFirst(t *testing.T) {
	isTwo := func(v int) bool { return v == 2 }

	t.Run("first_match_only", func(t *testing.T) {
		s := []int{1, 2, 2, 3}
		require.NoError(t, slices.ReplaceFirst(s, isTwo, 9))
		assert.Equal(t, []int{1, 9, 2, 3}, s)
	})
	t.Run("no_match", func(t *testing.T) {
		s := []int{1, 3, 5}
		require.NoError(t, slices.ReplaceFirst(s, isTwo, 9))
		assert.Equal(t, []int{1, 3, 5}, s)
	})
	t.Run("empty", func(t *testing.T) {
		s := []int{}
		require.NoError(t, slices.ReplaceFirst(s, isTwo, 9))
		assert.Empty(t, s)
	})
	t.Run("nil_slice", func(t *testing.T) {
		var s []int
		require.NoError(t, slices.ReplaceFirst(s, isTwo, 9))
	})
	t.Run("custom_type", func(t *testing.T) {
		type mySlice []string
		s := mySlice{"a", "b", "b"}
		require.NoError(t, slices.ReplaceFirst(s, func(v string) bool { return v == "b" }, "x"))
		assert.Equal(t, mySlice{"a", "x", "b"}, s)
	})
	t.Run("nil_predicate", func(t *testing.T) {
		s := []int{1, 2, 3}
		err := slices.ReplaceFirst(s, nil, 9)
		require.ErrorIs(t, err, slices.ErrNilPredicate)
		assert.Equal(t, []int{1, 2, 3}, s, "slice must stay untouched")
	})
	t.Run("nil_predicate_empty_slice", func(t *testing.T) {
		var s []int
		assert.ErrorIs(t, slices.ReplaceFirst(s, nil, 9), slices.ErrNilPredicate)
	})
}
