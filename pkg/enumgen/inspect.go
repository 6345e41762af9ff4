package enumgen

import (
	"fmt"
	"go/types"

	"golang.org/x/exp/slices"
)

// Type is a key type found in a package.
type Type struct {
	Name string

	// Variants lists constant names in declaration order.
	Variants []string
}

// Package is a package containing key types.
type Package struct {
	Name  string
	Dir   string
	Types []*Type
}

// Inspect finds every type in typeNames within pkg and collects its
// package-level constants in declaration order.
func Inspect(pkg *types.Package, typeNames []string) (*Package, error) {
	p := &Package{Name: pkg.Name()}
	for _, n := range typeNames {
		t, err := inspectType(pkg, n)
		if err != nil {
			return nil, err
		}
		p.Types = append(p.Types, t)
	}
	return p, nil
}

func inspectType(pkg *types.Package, name string) (*Type, error) {
	scope := pkg.Scope()
	obj, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, &ErrorTypeNotFound{Package: pkg.Path(), Type: name}
	}
	b, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 {
		return nil, &ErrorNotInteger{
			Type:       name,
			Underlying: obj.Type().Underlying().String(),
		}
	}

	var consts []*types.Const
	for _, n := range scope.Names() {
		c, ok := scope.Lookup(n).(*types.Const)
		if !ok || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		consts = append(consts, c)
	}
	if len(consts) < 1 {
		return nil, &ErrorNoVariants{Type: name}
	}

	// Scope names are sorted alphabetically.
	slices.SortFunc(consts, func(a, b *types.Const) int {
		return int(a.Pos()) - int(b.Pos())
	})

	t := &Type{Name: name, Variants: make([]string, len(consts))}
	values := make(map[string]string, len(consts))
	for i, c := range consts {
		v := c.Val().ExactString()
		if prev, ok := values[v]; ok {
			return nil, &ErrorDuplicateValue{
				Type:   name,
				Value:  v,
				Consts: [2]string{prev, c.Name()},
			}
		}
		values[v] = c.Name()
		t.Variants[i] = c.Name()
	}
	return t, nil
}

type ErrorTypeNotFound struct {
	Package string
	Type    string
}

func (e *ErrorTypeNotFound) Error() string {
	return fmt.Sprintf("type %s not found in package %s", e.Type, e.Package)
}

type ErrorNotInteger struct {
	Type       string
	Underlying string
}

func (e *ErrorNotInteger) Error() string {
	return fmt.Sprintf(
		"type %s has underlying type %s, expected an integer type",
		e.Type, e.Underlying,
	)
}

type ErrorNoVariants struct {
	Type string
}

func (e *ErrorNoVariants) Error() string {
	return fmt.Sprintf("type %s has no constants", e.Type)
}

// ErrorDuplicateValue is returned when two constants of a type share
// a value, which would map two variants to the same ordinal.
type ErrorDuplicateValue struct {
	Type   string
	Value  string
	Consts [2]string
}

func (e *ErrorDuplicateValue) Error() string {
	return fmt.Sprintf(
		"type %s: constants %s and %s have the same value %s",
		e.Type, e.Consts[0], e.Consts[1], e.Value,
	)
}
