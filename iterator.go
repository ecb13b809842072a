package linkedhashmap

import (
	"iter"

	"github.com/gostonefire/linkedhashmap/internal/conf"
	"github.com/gostonefire/linkedhashmap/internal/store"
)

// All - Returns a sequence over all records in iteration order (newest first).
// The record currently yielded may be erased from within the loop.
func (H *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		H.walk(true, func(idx int32) bool {
			return yield(H.store.Key(idx), H.store.Value(idx))
		})
	}
}

// AllPtr - Same as All but yields pointers to the values, allowing them to be updated in place
func (H *HashMap[K, V]) AllPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		H.walk(true, func(idx int32) bool {
			return yield(H.store.Key(idx), H.store.ValuePtr(idx))
		})
	}
}

// Backward - Returns a sequence over all records in reverse iteration order (oldest first)
func (H *HashMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		H.walk(false, func(idx int32) bool {
			return yield(H.store.Key(idx), H.store.Value(idx))
		})
	}
}

// Keys - Returns a sequence over all keys in iteration order
func (H *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		H.walk(true, func(idx int32) bool {
			return yield(H.store.Key(idx))
		})
	}
}

// Values - Returns a sequence over all values in iteration order
func (H *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		H.walk(true, func(idx int32) bool {
			return yield(H.store.Value(idx))
		})
	}
}

// walk - Calls fn for every record in order until fn returns false. If fn erases the record it was called
// for, walking continues with the record that followed it.
func (H *HashMap[K, V]) walk(forward bool, fn func(idx int32) bool) {
	step := H.store.Next
	idx := H.store.Front()
	if !forward {
		step = H.store.Prev
		idx = H.store.Back()
	}

	for idx != conf.NoEntry {
		current := H.store.HandleOf(idx)
		next := store.NilHandle
		if n := step(idx); n != conf.NoEntry {
			next = H.store.HandleOf(n)
		}

		if !fn(idx) {
			return
		}

		switch {
		case H.store.Valid(current):
			idx = step(idx)
		case H.store.Valid(next):
			idx = next.Index
		default:
			return
		}
	}
}

// Iterator - Is used to iterate over records one by one.
type Iterator[K comparable, V any] struct {
	hashMap *HashMap[K, V]
	next    store.Handle
}

// Iterator - Returns a pointer to a new Iterator starting at the first record in iteration order
func (H *HashMap[K, V]) Iterator() *Iterator[K, V] {
	next := store.NilHandle
	if H.store.Front() != conf.NoEntry {
		next = H.store.HandleOf(H.store.Front())
	}

	return &Iterator[K, V]{hashMap: H, next: next}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
// It returns false if the record that was up next has been erased since the previous call.
func (I *Iterator[K, V]) HasNext() bool {
	return I.hashMap.store.Valid(I.next)
}

// Next - Returns the next record.
// It returns:
//   - key and value of the next record.
//   - err is of type IteratorExhausted if there are no more records when calling this function.
func (I *Iterator[K, V]) Next() (key K, value V, err error) {
	if !I.HasNext() {
		err = IteratorExhausted{}
		return
	}

	s := I.hashMap.store
	idx := I.next.Index
	key = s.Key(idx)
	value = s.Value(idx)

	if n := s.Next(idx); n != conf.NoEntry {
		I.next = s.HandleOf(n)
	} else {
		I.next = store.NilHandle
	}

	return
}
