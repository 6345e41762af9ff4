package enummap

import (
	"iter"

	"github.com/graph-guard/enummap/pkg/enum"
)

// Iterator yields key-value pairs of a Map in canonical key order.
// An iterator can't be restarted, call Map.Iter to begin a new traversal.
//
// The map must not be modified while the iterator is in use,
// Next panics if it was modified through Set, SetRef, SetAll or Update.
type Iterator[K enum.Enum[K], V any] struct {
	m        *Map[K, V]
	variants []K
	cursor   int
	mod      uint64
}

// Iter returns a new iterator positioned before the first pair.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{
		m:        m,
		variants: enum.Variants[K](),
		mod:      m.mod,
	}
}

// Next returns the pair at the cursor and advances it.
// Returns ok == false once all pairs were yielded.
func (i *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if i.cursor >= len(i.m.data) {
		return key, value, false
	}
	checkMod(i.mod, i.m.mod)
	c := i.cursor
	i.cursor++
	return i.variants[c], i.m.data[c], true
}

// Index returns the ordinal of the key Next will yield,
// or Len if the iterator is exhausted.
func (i *Iterator[K, V]) Index() int { return i.cursor }

// IteratorMut yields keys and pointers to their slots
// in canonical key order.
//
// Every slot is yielded exactly once. The cursor only ever moves
// forward by one, so no two pointers returned by Next alias each other.
// Writes through the returned pointers are permitted while iterating.
type IteratorMut[K enum.Enum[K], V any] struct {
	m        *Map[K, V]
	variants []K
	cursor   int
	mod      uint64
}

// IterMut returns a new mutable iterator positioned before the first slot.
func (m *Map[K, V]) IterMut() *IteratorMut[K, V] {
	return &IteratorMut[K, V]{
		m:        m,
		variants: enum.Variants[K](),
		mod:      m.mod,
	}
}

// Next returns the key and slot pointer at the cursor and advances it.
// Returns ok == false once all slots were yielded.
func (i *IteratorMut[K, V]) Next() (key K, value *V, ok bool) {
	if i.cursor >= len(i.m.data) {
		return key, nil, false
	}
	checkMod(i.mod, i.m.mod)
	c := i.cursor
	i.cursor++
	return i.variants[c], &i.m.data[c], true
}

// Index returns the ordinal of the key Next will yield,
// or Len if the iterator is exhausted.
func (i *IteratorMut[K, V]) Index() int { return i.cursor }

func checkMod(iterMod, mapMod uint64) {
	if iterMod != mapMod {
		panic("enummap: map modified during iteration")
	}
}

// All returns an iterator over all key-value pairs in canonical order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		i := m.Iter()
		for k, v, ok := i.Next(); ok; k, v, ok = i.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// AllPtr returns an iterator over all keys and pointers to their slots
// in canonical order.
func (m *Map[K, V]) AllPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		i := m.IterMut()
		for k, v, ok := i.Next(); ok; k, v, ok = i.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Visit calls fn for every key-value pair in canonical order.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	variants := enum.Variants[K]()
	for i := range m.data {
		if fn(variants[i], m.data[i]) {
			break
		}
	}
}

// VisitMut calls fn for every key and a pointer to its slot
// in canonical order. Returns immediately if fn returns true.
// The pointer must not be retained after fn returns.
func (m *Map[K, V]) VisitMut(fn func(key K, value *V) (stop bool)) {
	variants := enum.Variants[K]()
	for i := range m.data {
		if fn(variants[i], &m.data[i]) {
			break
		}
	}
}
