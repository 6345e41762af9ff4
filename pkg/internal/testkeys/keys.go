// Package testkeys provides enumerable key types shared by tests.
package testkeys

//go:generate go run github.com/graph-guard/enummap/cmd/enumgen generate -type Example,Color -output keys_enum.go

type Example uint8

const (
	A Example = iota
	B
)

var exampleNames = [...]string{"A", "B"}

func (e Example) String() string {
	if int(e) < len(exampleNames) {
		return exampleNames[e]
	}
	return "Example(?)"
}

// Color starts at 1 so ordinals differ from values.
type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

var colorNames = [...]string{"red", "green", "blue"}

func (c Color) String() string {
	if c >= Red && c <= Blue {
		return colorNames[c-Red]
	}
	return "Color(?)"
}
