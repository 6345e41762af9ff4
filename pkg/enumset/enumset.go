// Package enumset provides a set of enumerable keys
// backed by a bit set indexed by key ordinal.
package enumset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/graph-guard/enummap/pkg/enum"
	"github.com/yourbasic/bit"
)

// Set is a set of variants of K.
type Set[K enum.Enum[K]] struct {
	b *bit.Set
}

// New creates a new set containing keys.
func New[K enum.Enum[K]](keys ...K) *Set[K] {
	s := &Set[K]{b: new(bit.Set)}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Full creates a new set containing every variant of K.
func Full[K enum.Enum[K]]() *Set[K] {
	s := &Set[K]{b: new(bit.Set)}
	if n := enum.Len[K](); n > 0 {
		s.b.AddRange(0, n)
	}
	return s
}

// Add adds k to the set.
func (s *Set[K]) Add(k K) {
	s.b.Add(ordinal(k))
}

// Delete removes k from the set.
func (s *Set[K]) Delete(k K) {
	s.b.Delete(ordinal(k))
}

// Contains returns true if k is in the set.
func (s *Set[K]) Contains(k K) bool {
	return s.b.Contains(ordinal(k))
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.b.Size() }

// Empty returns true if the set contains no keys.
func (s *Set[K]) Empty() bool { return s.b.Empty() }

// Union returns a new set containing the keys of s and o.
func (s *Set[K]) Union(o *Set[K]) *Set[K] {
	return &Set[K]{b: new(bit.Set).SetOr(s.b, o.b)}
}

// Intersect returns a new set containing the keys present in both s and o.
func (s *Set[K]) Intersect(o *Set[K]) *Set[K] {
	return &Set[K]{b: new(bit.Set).SetAnd(s.b, o.b)}
}

// Difference returns a new set containing the keys of s not present in o.
func (s *Set[K]) Difference(o *Set[K]) *Set[K] {
	return &Set[K]{b: new(bit.Set).SetAndNot(s.b, o.b)}
}

// Complement returns a new set containing all variants of K
// not present in s.
func (s *Set[K]) Complement() *Set[K] {
	return Full[K]().Difference(s)
}

// Equal returns true if s and o contain the same keys.
func (s *Set[K]) Equal(o *Set[K]) bool { return s.b.Equal(o.b) }

// Clone returns a copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{b: new(bit.Set).Set(s.b)}
}

// Visit calls fn for every key in the set in canonical order.
// Returns immediately if fn returns true.
func (s *Set[K]) Visit(fn func(K) (stop bool)) {
	variants := enum.Variants[K]()
	s.b.Visit(func(n int) (skip bool) {
		return fn(variants[n])
	})
}

// All returns an iterator over the keys of the set in canonical order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.Visit(func(k K) (stop bool) { return !yield(k) })
	}
}

// String returns the keys formatted as "enumset{k1 k2}".
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteString("enumset{")
	first := true
	s.Visit(func(k K) (stop bool) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", k)
		return false
	})
	b.WriteByte('}')
	return b.String()
}

// ordinal returns the ordinal of k and panics if it's out of range.
// bit.Set would silently grow for ordinals beyond the domain.
func ordinal[K enum.Enum[K]](k K) int {
	o := k.Ordinal()
	if n := enum.Len[K](); o < 0 || o >= n {
		panic(fmt.Errorf("enumset: ordinal %d of %v out of range [0, %d)", o, k, n))
	}
	return o
}
