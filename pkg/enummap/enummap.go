// Package enummap provides Map, a fixed-domain associative container
// keyed by an enumerable type. Values are stored in a dense slice
// indexed by key ordinal which makes every access O(1)
// without hashing or searching.
//
// A Map isn't safe for concurrent use.
package enummap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/enummap/pkg/enum"
	"github.com/graph-guard/enummap/pkg/enumset"
	"golang.org/x/exp/slices"
)

// Map associates one value of type V with every variant of K.
// Slot i always holds the value of enum.Variants[K]()[i].
//
// Indexing with a key whose ordinal is out of range panics.
// Such a key means the enum.Enum implementation of K is broken.
type Map[K enum.Enum[K], V any] struct {
	data []V

	// mod is incremented by every write that isn't made through
	// a mutable iterator, see Iterator.Next.
	mod uint64
}

// New creates a new map calling factory once for every variant
// of K in canonical order.
//
// Panics with *enum.ErrorOrdinal if the ordinal of a variant
// disagrees with its position in the canonical listing.
func New[K enum.Enum[K], V any](factory func(K) V) *Map[K, V] {
	variants := enum.Variants[K]()
	m := &Map[K, V]{data: make([]V, len(variants))}
	for i, k := range variants {
		checkOrdinal(variants, i)
		m.data[i] = factory(k)
	}
	return m
}

// NewValue creates a new map with every slot set to v.
func NewValue[K enum.Enum[K], V any](v V) *Map[K, V] {
	return New(func(K) V { return v })
}

// SetAll replaces all values calling factory once for every variant
// of K in canonical order. factory receives a copy of the variant,
// writes through the pointer don't affect the key domain.
// Panics like New.
func (m *Map[K, V]) SetAll(factory func(*K) V) {
	variants := enum.Variants[K]()
	d := make([]V, len(variants))
	for i := range variants {
		checkOrdinal(variants, i)
		k := variants[i]
		d[i] = factory(&k)
	}
	m.data = d
	m.mod++
}

func checkOrdinal[K enum.Enum[K]](variants []K, i int) {
	if o := variants[i].Ordinal(); o != i {
		panic(&enum.ErrorOrdinal{
			Variant:  fmt.Sprintf("%v", variants[i]),
			Position: i,
			Ordinal:  o,
			Len:      len(variants),
		})
	}
}

// Get returns the value associated with k.
func (m *Map[K, V]) Get(k K) V {
	return m.data[k.Ordinal()]
}

// GetRef is equivalent to Get(*k).
func (m *Map[K, V]) GetRef(k *K) V {
	return m.data[(*k).Ordinal()]
}

// Ptr returns a pointer to the slot of k.
// The pointer remains valid until the next call to SetAll.
func (m *Map[K, V]) Ptr(k K) *V {
	return &m.data[k.Ordinal()]
}

// Set associates value with k.
func (m *Map[K, V]) Set(k K, value V) {
	m.data[k.Ordinal()] = value
	m.mod++
}

// SetRef is equivalent to Set(*k, value).
func (m *Map[K, V]) SetRef(k *K, value V) {
	m.data[(*k).Ordinal()] = value
	m.mod++
}

// Update applies fn to the slot of k.
func (m *Map[K, V]) Update(k K, fn func(value *V)) {
	fn(&m.data[k.Ordinal()])
	m.mod++
}

// Len returns the number of slots which always equals
// the number of variants of K.
func (m *Map[K, V]) Len() int {
	return len(m.data)
}

// Keys returns a copy of the variants of K in canonical order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(enum.Variants[K]())
}

// Values returns a copy of all values in canonical key order.
func (m *Map[K, V]) Values() []V {
	return slices.Clone(m.data)
}

// exportAll makes cmp.Equal compare unexported struct fields
// instead of panicking on them.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal returns true if all values of m and o are equal.
// Values are compared using cmp.Equal including unexported fields.
func (m *Map[K, V]) Equal(o *Map[K, V]) bool {
	return len(m.data) == len(o.data) && cmp.Equal(m.data, o.data, exportAll)
}

// EqualFunc is like Equal but compares values using eq.
func (m *Map[K, V]) EqualFunc(o *Map[K, V], eq func(a, b V) bool) bool {
	return slices.EqualFunc(m.data, o.data, eq)
}

// Clone returns a copy of m.
// Values are copied by assignment, use CloneFunc to deep-copy
// values holding references.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{data: slices.Clone(m.data)}
}

// CloneFunc returns a copy of m with every value copied by fn.
func (m *Map[K, V]) CloneFunc(fn func(V) V) *Map[K, V] {
	d := make([]V, len(m.data))
	for i := range m.data {
		d[i] = fn(m.data[i])
	}
	return &Map[K, V]{data: d}
}

// KeysWhere returns the set of keys for which pred returns true.
func (m *Map[K, V]) KeysWhere(pred func(K, V) bool) *enumset.Set[K] {
	s := enumset.New[K]()
	variants := enum.Variants[K]()
	for i := range m.data {
		if pred(variants[i], m.data[i]) {
			s.Add(variants[i])
		}
	}
	return s
}

// String returns the contents of m formatted as "enummap[k1:v1 k2:v2]".
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("enummap[")
	variants := enum.Variants[K]()
	for i := range m.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", variants[i], m.data[i])
	}
	b.WriteByte(']')
	return b.String()
}
