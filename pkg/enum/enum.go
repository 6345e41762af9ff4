// Package enum defines the capability a key type must provide to be used
// with the enum-indexed containers in this module.
//
// A key type is a closed set of variants. It lists all of them in one
// canonical order and maps each variant to its position in that order.
// Implementations are usually generated by cmd/enumgen.
package enum

import (
	"fmt"
	"strings"
)

// Enum is implemented by enumerable key types.
//
// Variants is called on the zero value of K and must list every valid
// value of K exactly once, in the same order on every call.
// The returned slice must not be modified by callers.
//
// Ordinal must return the position of the receiver in Variants,
// which is always within [0, len(Variants())).
type Enum[K any] interface {
	comparable
	Ordinal() int
	Variants() []K
}

// Variants returns the canonical listing of K.
func Variants[K Enum[K]]() []K {
	var zero K
	return zero.Variants()
}

// Len returns the number of variants of K.
func Len[K Enum[K]]() int {
	return len(Variants[K]())
}

// Validate checks that the ordinal of every variant of K matches
// its position in the canonical listing.
// Returns *ErrorOrdinal for the first variant that doesn't.
func Validate[K Enum[K]]() error {
	v := Variants[K]()
	for i := range v {
		if o := v[i].Ordinal(); o != i {
			return &ErrorOrdinal{
				Variant:  fmt.Sprintf("%v", v[i]),
				Position: i,
				Ordinal:  o,
				Len:      len(v),
			}
		}
	}
	return nil
}

// MustValidate panics if Validate returns an error.
func MustValidate[K Enum[K]]() {
	if err := Validate[K](); err != nil {
		panic(err)
	}
}

// ErrorOrdinal is returned when a variant's ordinal disagrees
// with its position in the canonical listing.
type ErrorOrdinal struct {
	Variant  string
	Position int
	Ordinal  int
	Len      int
}

func (e *ErrorOrdinal) Error() string {
	var b strings.Builder
	b.WriteString("variant ")
	b.WriteString(e.Variant)
	b.WriteString(" at position ")
	fmt.Fprintf(&b, "%d", e.Position)
	if e.Ordinal < 0 || e.Ordinal >= e.Len {
		fmt.Fprintf(&b, " has out of range ordinal %d (variants: %d)", e.Ordinal, e.Len)
		return b.String()
	}
	fmt.Fprintf(&b, " has ordinal %d", e.Ordinal)
	return b.String()
}
