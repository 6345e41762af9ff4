// Package enumtest provides assertion helpers for tests of code
// using enum-indexed containers.
package enumtest

import (
	"iter"

	"github.com/graph-guard/enummap/pkg/enum"
	"github.com/graph-guard/enummap/pkg/enummap"
)

// Writer is the subset of testing.TB used for reporting.
type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

// Pair is a key-value pair.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Collect drains seq into a slice of pairs.
func Collect[K, V any](seq iter.Seq2[K, V]) []Pair[K, V] {
	var p []Pair[K, V]
	for k, v := range seq {
		p = append(p, Pair[K, V]{Key: k, Value: v})
	}
	return p
}

// Map compares the slots of actual against expected which lists
// one value per variant of K in canonical order.
// Every mismatch is reported through writer.
func Map[K enum.Enum[K], V any](
	writer Writer,
	title string,
	expected []V,
	actual *enummap.Map[K, V],
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	variants := enum.Variants[K]()
	i := 0
	actual.Visit(func(k K, a V) (stop bool) {
		if i >= len(expected) {
			writer.Errorf(
				"unexpected %s %v (%s)",
				title, k, stringify(a),
			)
			ok = false
		} else if msg := check(expected[i], a); msg != "" {
			writer.Errorf(
				"mismatching %s %v: %s",
				title, k, msg,
			)
			ok = false
		}
		i++
		return false
	})
	for ; i < len(expected); i++ {
		if i < len(variants) {
			writer.Errorf(
				"missing %s %v (%s)",
				title, variants[i], stringify(expected[i]),
			)
		} else {
			writer.Errorf(
				"missing %s at index %d (%s)",
				title, i, stringify(expected[i]),
			)
		}
		ok = false
	}
	return ok
}

// Pairs compares the pairs yielded by actual against expected
// by index, checking both keys and values.
func Pairs[K comparable, V any](
	writer Writer,
	title string,
	expected []Pair[K, V],
	actual iter.Seq2[K, V],
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	i := 0
	for k, a := range actual {
		switch {
		case i >= len(expected):
			writer.Errorf(
				"unexpected %s at index %d (%v: %s)",
				title, i, k, stringify(a),
			)
			ok = false
		case expected[i].Key != k:
			writer.Errorf(
				"mismatching %s key at index %d: expected %v, got %v",
				title, i, expected[i].Key, k,
			)
			ok = false
		default:
			if msg := check(expected[i].Value, a); msg != "" {
				writer.Errorf(
					"mismatching %s %v at index %d: %s",
					title, k, i, msg,
				)
				ok = false
			}
		}
		i++
	}
	for ; i < len(expected); i++ {
		writer.Errorf(
			"missing %s at index %d (%v: %s)",
			title, i, expected[i].Key, stringify(expected[i].Value),
		)
		ok = false
	}
	return ok
}
