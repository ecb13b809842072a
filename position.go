package linkedhashmap

import (
	"github.com/gostonefire/linkedhashmap/internal/conf"
	"github.com/gostonefire/linkedhashmap/internal/store"
)

// Position - A stable reference to one record of a HashMap, or the end marker of the map.
// A position stays valid until its record is erased, the map is cleared or the map is reassigned; inserting or
// erasing other records (including inserts that grow the map) does not affect it.
// Positions are comparable, two positions are equal if they refer to the same record of the same map.
type Position[K comparable, V any] struct {
	hashMap *HashMap[K, V]
	handle  store.Handle
}

// ConstPosition - Read only variant of Position
type ConstPosition[K comparable, V any] struct {
	position Position[K, V]
}

// Begin - Returns the position of the first record in iteration order, or End() if the map is empty
func (H *HashMap[K, V]) Begin() Position[K, V] {
	if H.store.Front() == conf.NoEntry {
		return H.End()
	}

	return H.positionOf(H.store.Front())
}

// End - Returns the end marker of the map, it is also what Find returns when a key is not present
func (H *HashMap[K, V]) End() Position[K, V] {
	return Position[K, V]{hashMap: H, handle: store.NilHandle}
}

// BeginConst - Read only variant of Begin
func (H *HashMap[K, V]) BeginConst() ConstPosition[K, V] {
	return H.Begin().Const()
}

// EndConst - Read only variant of End
func (H *HashMap[K, V]) EndConst() ConstPosition[K, V] {
	return H.End().Const()
}

// Valid - Returns true if the position refers to a live record
func (P Position[K, V]) Valid() bool {
	return P.hashMap != nil && P.hashMap.store.Valid(P.handle)
}

// Key - Returns the key of the record. Panics if the position is not valid.
func (P Position[K, V]) Key() K {
	P.mustBeValid()
	return P.hashMap.store.Key(P.handle.Index)
}

// Value - Returns the value of the record. Panics if the position is not valid.
func (P Position[K, V]) Value() V {
	P.mustBeValid()
	return P.hashMap.store.Value(P.handle.Index)
}

// Ptr - Returns a pointer to the value of the record. Panics if the position is not valid.
func (P Position[K, V]) Ptr() *V {
	P.mustBeValid()
	return P.hashMap.store.ValuePtr(P.handle.Index)
}

// Set - Replaces the value of the record. Panics if the position is not valid.
func (P Position[K, V]) Set(value V) {
	*P.Ptr() = value
}

// Next - Returns the position following P in iteration order, End() after the last record.
// Panics if the position is not valid.
func (P Position[K, V]) Next() Position[K, V] {
	P.mustBeValid()
	next := P.hashMap.store.Next(P.handle.Index)
	if next == conf.NoEntry {
		return P.hashMap.End()
	}

	return P.hashMap.positionOf(next)
}

// Prev - Returns the position preceding P in iteration order. Prev of End() is the last record and
// Prev of the first record is End(). Panics if the position is neither valid nor End().
func (P Position[K, V]) Prev() Position[K, V] {
	var prev int32
	if P.handle == store.NilHandle {
		prev = P.hashMap.store.Back()
	} else {
		P.mustBeValid()
		prev = P.hashMap.store.Prev(P.handle.Index)
	}
	if prev == conf.NoEntry {
		return P.hashMap.End()
	}

	return P.hashMap.positionOf(prev)
}

// Const - Returns a read only view of the position
func (P Position[K, V]) Const() ConstPosition[K, V] {
	return ConstPosition[K, V]{position: P}
}

// Valid - Returns true if the position refers to a live record
func (C ConstPosition[K, V]) Valid() bool {
	return C.position.Valid()
}

// Key - Returns the key of the record. Panics if the position is not valid.
func (C ConstPosition[K, V]) Key() K {
	return C.position.Key()
}

// Value - Returns the value of the record. Panics if the position is not valid.
func (C ConstPosition[K, V]) Value() V {
	return C.position.Value()
}

// Next - Read only variant of Position.Next
func (C ConstPosition[K, V]) Next() ConstPosition[K, V] {
	return C.position.Next().Const()
}

// Prev - Read only variant of Position.Prev
func (C ConstPosition[K, V]) Prev() ConstPosition[K, V] {
	return C.position.Prev().Const()
}

// positionOf - Returns a position for the live record at element store index idx
func (H *HashMap[K, V]) positionOf(idx int32) Position[K, V] {
	return Position[K, V]{hashMap: H, handle: H.store.HandleOf(idx)}
}

// mustBeValid - Panics unless the position refers to a live record
func (P Position[K, V]) mustBeValid() {
	if !P.Valid() {
		panic("linkedhashmap: use of invalid or end position")
	}
}
