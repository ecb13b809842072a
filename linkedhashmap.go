// Package linkedhashmap implements a generic hash map using separate chaining, where the entries live in an
// insertion ordered element store and each bucket only holds references (slots) into that store.
//
// Lookups, inserts and erases are O(1) amortized. Iteration follows the element store, newest entry first,
// and is independent of the bucket layout. Growing the bucket index never moves an entry, so positions and
// value pointers handed out by the map stay valid until their own entry is erased or the map is cleared.
//
// A HashMap is not safe for concurrent use.
package linkedhashmap

import (
	"iter"

	"github.com/gostonefire/linkedhashmap/hashfunc"
	"github.com/gostonefire/linkedhashmap/internal/conf"
	"github.com/gostonefire/linkedhashmap/internal/store"
	"github.com/gostonefire/linkedhashmap/internal/utils"
)

// Pair - A key and its value
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Buckets is the current number of buckets
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records / Buckets
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// HashMap - The main implementation struct
type HashMap[K comparable, V any] struct {
	store    *store.Store[K, V]
	buckets  [][]int32
	hashFunc hashfunc.HashFunc[K]
}

// New - Returns a new empty hash map with conf.InitSize buckets.
//   - hashFunc is an optional entry to provide a custom hash strategy following the hashfunc.HashFunc interface, nil gives hashfunc.Comparable.
func New[K comparable, V any](hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	return newHashMap[K, V](conf.InitSize, hashFunc)
}

// NewWithCapacity - Returns a new empty hash map with enough buckets to take hint records without growing.
//   - hint is the expected number of records, values below 1 give the same map as New
//   - hashFunc is an optional custom hash strategy, nil gives hashfunc.Comparable.
func NewWithCapacity[K comparable, V any](hint int, hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	buckets := utils.RoundUp2(utils.MaxInt(conf.InitSize, hint*conf.RehashFactor))
	return newHashMap[K, V](buckets, hashFunc)
}

// NewFromSeq - Returns a new hash map holding the pairs of seq, inserted in traversal order.
// If a key occurs more than once the first occurrence wins.
func NewFromSeq[K comparable, V any](seq iter.Seq2[K, V], hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	H := New[K, V](hashFunc)
	for k, v := range seq {
		H.Insert(k, v)
	}

	return H
}

// NewFromRange - Returns a new hash map holding the entries from begin up to, but not including, end.
// Both positions must belong to the same hash map. Walking stops early if an invalid position is reached.
func NewFromRange[K comparable, V any](begin, end Position[K, V], hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	H := New[K, V](hashFunc)
	for p := begin; p != end && p.Valid(); p = p.Next() {
		H.Insert(p.Key(), p.Value())
	}

	return H
}

// NewFromPairs - Returns a new hash map holding pairs, inserted in slice order. If a key occurs more than
// once the first occurrence wins.
func NewFromPairs[K comparable, V any](pairs []Pair[K, V], hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	H := New[K, V](hashFunc)
	for _, p := range pairs {
		H.InsertPair(p)
	}

	return H
}

// Assign - Replaces the contents of the hash map with a deep copy of other. The receiver is reset to
// conf.InitSize buckets, takes over the hash strategy of other and ends up with the same iteration order as other.
// All positions previously taken from the receiver become invalid. Assigning a map to itself does nothing.
func (H *HashMap[K, V]) Assign(other *HashMap[K, V]) {
	if H == other {
		return
	}

	H.Clear()
	H.buckets = make([][]int32, conf.InitSize)
	H.hashFunc = other.hashFunc

	// Inserts go first in order, so walk other backwards to end up with the same order
	for idx := other.store.Back(); idx != conf.NoEntry; idx = other.store.Prev(idx) {
		H.Insert(other.store.Key(idx), other.store.Value(idx))
	}
}

// Clone - Returns a new hash map that is a deep copy of H, sharing its hash strategy
func (H *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := New[K, V](H.hashFunc)
	c.Assign(H)

	return c
}

// Size - Returns number of records in the hash map
func (H *HashMap[K, V]) Size() int {
	return H.store.Len()
}

// Empty - Returns true if the hash map holds no records
func (H *HashMap[K, V]) Empty() bool {
	return H.store.Len() == 0
}

// HashFunction - Returns the hash strategy in use
func (H *HashMap[K, V]) HashFunction() hashfunc.HashFunc[K] {
	return H.hashFunc
}

// BucketCount - Returns the current number of buckets
func (H *HashMap[K, V]) BucketCount() int {
	return len(H.buckets)
}

// LoadFactor - Returns records per bucket
func (H *HashMap[K, V]) LoadFactor() float64 {
	return float64(H.store.Len()) / float64(len(H.buckets))
}

// newHashMap - Returns a pointer to a new HashMap with the given number of buckets
func newHashMap[K comparable, V any](buckets int, hashFunc hashfunc.HashFunc[K]) *HashMap[K, V] {
	if hashFunc == nil {
		hashFunc = hashfunc.NewComparable[K]()
	}

	return &HashMap[K, V]{
		store:    store.NewStore[K, V](),
		buckets:  make([][]int32, buckets),
		hashFunc: hashFunc,
	}
}
