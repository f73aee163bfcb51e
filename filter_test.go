package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clayscope/slices"
)

func TestFilter(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		res := slices.Filter(s, func(v int) bool {
			return v&1 != 1
		})
		expected := []int{2, 4, 6, 8, 10}
		assert.Equal(t, expected, res)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, s, "original slice must stay intact")
	})
	t.Run("custom_type", func(t *testing.T) {
		type mySlice []int
		s := mySlice{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		res := slices.Filter(s, func(v int) bool {
			return v&1 != 1
		})
		expected := mySlice{2, 4, 6, 8, 10}
		assert.Equal(t, expected, res)
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, slices.Filter([]int{}, func(int) bool { return true }))
	})
}
