package linkedhashmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMap_All(t *testing.T) {
	t.Run("empty map yields nothing", func(t *testing.T) {
		// Prepare
		H := New[string, int](nil)

		// Execute and Check
		assert.Nil(t, pairsOf(H), "nothing from All")
		assert.Nil(t, slices.Collect(H.Keys()), "nothing from Keys")
		assert.Nil(t, slices.Collect(H.Values()), "nothing from Values")
	})

	t.Run("sequences are restartable", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, nil)
		keys := H.Keys()

		// Execute
		first := slices.Collect(keys)
		second := slices.Collect(keys)

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, first, "first pass")
		assert.Equal(t, first, second, "second pass")
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(H.Values()), "values in order")
	})

	t.Run("backward yields oldest first", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, nil)
		var keys []string

		// Execute
		for k := range H.Backward() {
			keys = append(keys, k)
		}

		// Check
		assert.Equal(t, []string{"a", "b", "c"}, keys, "reverse order")
	})

	t.Run("stops when the loop breaks", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[int, int]{{1, 1}, {2, 2}, {3, 3}, {4, 4}}, nil)
		var keys []int

		// Execute
		for k := range H.All() {
			keys = append(keys, k)
			if len(keys) == 2 {
				break
			}
		}

		// Check
		assert.Equal(t, []int{4, 3}, keys, "two records visited")
	})

	t.Run("values can be updated through AllPtr", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}}, nil)

		// Execute
		for _, v := range H.AllPtr() {
			*v *= 10
		}

		// Check
		assert.Equal(t, []Pair[string, int]{{"b", 20}, {"a", 10}}, pairsOf(H), "values updated")
	})

	t.Run("current record can be erased during iteration", func(t *testing.T) {
		// Prepare
		H := New[int, int](nil)
		for i := 0; i < 10; i++ {
			H.Insert(i, i)
		}

		// Execute
		var visited []int
		for k := range H.All() {
			visited = append(visited, k)
			if k%2 == 0 {
				H.Erase(k)
			}
		}

		// Check
		assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, visited, "every record visited once")
		assert.Equal(t, []int{9, 7, 5, 3, 1}, slices.Collect(H.Keys()), "even keys erased")
	})

	t.Run("iteration order does not depend on bucket count", func(t *testing.T) {
		// Prepare
		small := New[int, int](nil)
		large := NewWithCapacity[int, int](4096, nil)

		// Execute
		for i := 0; i < 300; i++ {
			small.Insert(i*7, i)
			large.Insert(i*7, i)
		}

		// Check
		assert.NotEqual(t, small.BucketCount(), large.BucketCount(), "different bucket counts")
		assert.Equal(t, pairsOf(large), pairsOf(small), "same iteration")
	})
}

func TestIterator(t *testing.T) {
	t.Run("returns records one by one", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}}, nil)
		it := H.Iterator()

		// Execute and Check
		require.True(t, it.HasNext(), "has first")
		k, v, err := it.Next()
		assert.NoError(t, err, "first record")
		assert.Equal(t, "b", k, "first key")
		assert.Equal(t, 2, v, "first value")

		require.True(t, it.HasNext(), "has second")
		k, v, err = it.Next()
		assert.NoError(t, err, "second record")
		assert.Equal(t, "a", k, "second key")
		assert.Equal(t, 1, v, "second value")

		assert.False(t, it.HasNext(), "no more records")
		_, _, err = it.Next()
		assert.ErrorIs(t, err, IteratorExhausted{}, "exhausted")
	})

	t.Run("empty map gives exhausted iterator", func(t *testing.T) {
		// Prepare
		it := New[string, int](nil).Iterator()

		// Execute
		_, _, err := it.Next()

		// Check
		assert.False(t, it.HasNext(), "no records")
		assert.ErrorIs(t, err, IteratorExhausted{}, "exhausted")
		assert.Equal(t, "iterator exhausted", err.Error(), "default message")
	})

	t.Run("stops if the upcoming record is erased", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}}, nil)
		it := H.Iterator()
		_, _, err := it.Next()
		require.NoError(t, err, "first record")

		// Execute
		H.Erase("a")

		// Check
		assert.False(t, it.HasNext(), "erased record not returned")
	})
}

func TestPosition(t *testing.T) {
	t.Run("walks forward and backward", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, nil)
		var forward, backward []string

		// Execute
		for p := H.Begin(); p != H.End(); p = p.Next() {
			forward = append(forward, p.Key())
		}
		for p := H.End().Prev(); p != H.End(); p = p.Prev() {
			backward = append(backward, p.Key())
		}

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, forward, "forward")
		assert.Equal(t, []string{"a", "b", "c"}, backward, "backward")
	})

	t.Run("const positions walk the same way", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}}, nil)
		var values []int

		// Execute
		for c := H.BeginConst(); c != H.EndConst(); c = c.Next() {
			values = append(values, c.Value())
		}

		// Check
		assert.Equal(t, []int{2, 1}, values, "values")
		assert.Equal(t, "b", H.EndConst().Prev().Prev().Key(), "backward from end")
		assert.True(t, H.FindConst("a").Valid(), "valid const position")
	})

	t.Run("set changes the value in the map", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}}, nil)
		p := H.Find("a")

		// Execute
		p.Set(5)
		*p.Ptr() += 1

		// Check
		v, err := H.At("a")
		assert.NoError(t, err, "found")
		assert.Equal(t, 6, v, "updated")
		assert.Equal(t, 6, p.Const().Value(), "visible through const view")
	})

	t.Run("prev of first record is end", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}}, nil)
		E := New[string, int](nil)

		// Execute and Check
		assert.Equal(t, H.End(), H.Begin().Prev(), "end")
		assert.Equal(t, E.End(), E.End().Prev().Prev(), "empty map end")
	})

	t.Run("using an invalid position panics", func(t *testing.T) {
		// Prepare
		H := NewFromPairs([]Pair[string, int]{{"a", 1}}, nil)
		p := H.Find("a")
		H.Erase("a")
		var zero Position[string, int]

		// Execute and Check
		assert.Panics(t, func() { H.End().Key() }, "end key")
		assert.Panics(t, func() { H.End().Next() }, "end next")
		assert.Panics(t, func() { p.Value() }, "erased value")
		assert.Panics(t, func() { p.Set(3) }, "erased set")
		assert.Panics(t, func() { p.Prev() }, "erased prev")
		assert.Panics(t, func() { zero.Key() }, "zero position")
		assert.False(t, zero.Valid(), "zero position not valid")
	})
}
