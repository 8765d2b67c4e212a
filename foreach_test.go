package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	set "github.com/kleinfreund/reverse-iterable-set"
)

func TestSet_ForEach(t *testing.T) {
	t.Run("visits every element forward", func(t *testing.T) {
		s := set.New("a", "b", "c")

		var got []string
		s.ForEach(func(value string, valueAgain string, src *set.Set[string]) {
			assert.Equal(t, value, valueAgain)
			assert.Same(t, s, src)
			got = append(got, value)
		})

		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("no calls on an empty set", func(t *testing.T) {
		s := set.New[int]()

		calls := 0
		s.ForEach(func(int, int, *set.Set[int]) {
			calls++
		})

		assert.Equal(t, 0, calls)
	})
}

func TestSet_ForEachReverse(t *testing.T) {
	t.Run("visits every element backward", func(t *testing.T) {
		s := set.New("a", "b", "c")

		var got []string
		s.ForEachReverse(func(value string, _ string, _ *set.Set[string]) {
			got = append(got, value)
		})

		assert.Equal(t, []string{"c", "b", "a"}, got)
	})
}

func TestForEachBound(t *testing.T) {
	type collector struct {
		seen []int
	}

	t.Run("receiver is passed to every call", func(t *testing.T) {
		s := set.New(1, 2, 3)
		recv := &collector{}

		set.ForEachBound(s, recv, func(c *collector, value int, _ int, _ *set.Set[int]) {
			c.seen = append(c.seen, value)
		})

		assert.Equal(t, []int{1, 2, 3}, recv.seen)
	})

	t.Run("reverse bound iteration", func(t *testing.T) {
		s := set.New(1, 2, 3)
		recv := &collector{}

		set.ForEachReverseBound(s, recv, func(c *collector, value int, _ int, _ *set.Set[int]) {
			c.seen = append(c.seen, value)
		})

		assert.Equal(t, []int{3, 2, 1}, recv.seen)
	})
}
