package linkedhashmap

import (
	"fmt"
	"slices"

	"github.com/gostonefire/linkedhashmap/internal/conf"
)

// Find - Returns the position of the record matching key, or End() if there is no such record.
func (H *HashMap[K, V]) Find(key K) Position[K, V] {
	_, _, idx := H.lookup(key)
	if idx == conf.NoEntry {
		return H.End()
	}

	return H.positionOf(idx)
}

// FindConst - Same as Find but the returned position does not allow the value to be changed
func (H *HashMap[K, V]) FindConst(key K) ConstPosition[K, V] {
	return H.Find(key).Const()
}

// Contains - Returns true if a record matching key exists
func (H *HashMap[K, V]) Contains(key K) bool {
	_, _, idx := H.lookup(key)
	return idx != conf.NoEntry
}

// Insert - Adds a new record unless a record with the same key already exists, in which case the existing
// value is left untouched. New records go first in iteration order.
//
// It returns:
//   - position is the position of the record holding key, new or existing
//   - inserted is true if a new record was added
func (H *HashMap[K, V]) Insert(key K, value V) (position Position[K, V], inserted bool) {
	bucketNo, _, idx := H.lookup(key)
	if idx != conf.NoEntry {
		position = H.positionOf(idx)
		return
	}

	idx = H.store.PushFront(key, value)
	H.buckets[bucketNo] = slices.Insert(H.buckets[bucketNo], 0, idx)

	if len(H.buckets) < H.store.Len()*conf.RehashFactor {
		H.rehash()
	}

	position = H.positionOf(idx)
	inserted = true

	return
}

// InsertPair - Same as Insert but takes a Pair
func (H *HashMap[K, V]) InsertPair(pair Pair[K, V]) (position Position[K, V], inserted bool) {
	return H.Insert(pair.Key, pair.Value)
}

// Erase - Removes the record matching key. Erasing a key that is not present does nothing.
// Positions to the erased record become invalid, all other positions are unaffected.
// It returns true if a record was removed.
func (H *HashMap[K, V]) Erase(key K) bool {
	bucketNo, slot, idx := H.lookup(key)
	if idx == conf.NoEntry {
		return false
	}

	H.buckets[bucketNo] = slices.Delete(H.buckets[bucketNo], slot, slot+1)
	H.store.Remove(idx)

	return true
}

// Index - Returns a pointer to the value of the record matching key, adding a record with the zero value
// first if key is not present. The pointer stays valid until the record is erased or the map is cleared.
func (H *HashMap[K, V]) Index(key K) *V {
	_, _, idx := H.lookup(key)
	if idx == conf.NoEntry {
		var value V
		position, _ := H.Insert(key, value)
		idx = position.handle.Index
	}

	return H.store.ValuePtr(idx)
}

// At - Gets the value of the record matching key.
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type KeyNotFound if there is no record matching key
func (H *HashMap[K, V]) At(key K) (value V, err error) {
	_, _, idx := H.lookup(key)
	if idx == conf.NoEntry {
		err = KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}
		return
	}

	value = H.store.Value(idx)

	return
}

// Clear - Removes all records. The number of buckets is kept as is.
func (H *HashMap[K, V]) Clear() {
	for i := range H.buckets {
		H.buckets[i] = H.buckets[i][:0]
	}
	H.store.Clear()
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Buckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	hashMapStat.Buckets = len(H.buckets)
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, len(H.buckets))
	}

	for i, slots := range H.buckets {
		n := len(slots)
		hashMapStat.Records += n
		if n > 0 {
			hashMapStat.UsedBuckets++
		}
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	hashMapStat.LoadFactor = float64(hashMapStat.Records) / float64(hashMapStat.Buckets)

	return
}

// GetBucketNo - Returns which bucket number the given key results in under the current number of buckets
func (H *HashMap[K, V]) GetBucketNo(key K) int {
	return int(H.hashFunc.Hash(key) % uint64(len(H.buckets)))
}

// lookup - Scans the bucket for key.
//
// It returns:
//   - bucketNo is the bucket that key belongs to
//   - slot is the index within the bucket of the matching slot, -1 if not found
//   - idx is the element store index of the matching record, conf.NoEntry if not found
func (H *HashMap[K, V]) lookup(key K) (bucketNo int, slot int, idx int32) {
	bucketNo = H.GetBucketNo(key)
	for i, s := range H.buckets[bucketNo] {
		if H.store.Key(s) == key {
			slot = i
			idx = s
			return
		}
	}

	slot = -1
	idx = conf.NoEntry

	return
}

// rehash - Multiplies the number of buckets by conf.RehashFactor until the load factor is satisfied, then
// rebuilds every bucket by walking the element store in order. Records themselves are never moved.
func (H *HashMap[K, V]) rehash() {
	n := len(H.buckets)
	for n < H.store.Len()*conf.RehashFactor {
		n *= conf.RehashFactor
	}

	H.buckets = make([][]int32, n)
	for idx := H.store.Front(); idx != conf.NoEntry; idx = H.store.Next(idx) {
		bucketNo := H.GetBucketNo(H.store.Key(idx))
		H.buckets[bucketNo] = append(H.buckets[bucketNo], idx)
	}
}
