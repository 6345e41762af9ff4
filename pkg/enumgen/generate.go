package enumgen

import (
	"bytes"
	"fmt"
	"go/format"
)

const Header = "// Code generated by enumgen; DO NOT EDIT."

// Generate returns the gofmt'ed source of a file implementing
// the enum.Enum interface for every type of p.
//
// Ordinal returns -1 for values that aren't variants which makes
// indexing any container with such a value panic.
func Generate(p *Package) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n\npackage %s\n", Header, p.Name)
	for _, t := range p.Types {
		writeType(&b, t)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func writeType(b *bytes.Buffer, t *Type) {
	arr := "_" + t.Name + "Variants"
	recv := receiverName(t)

	fmt.Fprintf(b, "\nvar %s = [...]%s{\n", arr, t.Name)
	for _, v := range t.Variants {
		fmt.Fprintf(b, "\t%s,\n", v)
	}
	b.WriteString("}\n")

	fmt.Fprintf(b,
		"\n// Variants returns all %s values in declaration order.\n"+
			"func (%s) Variants() []%s { return %s[:] }\n",
		t.Name, t.Name, t.Name, arr,
	)

	fmt.Fprintf(b,
		"\n// Ordinal returns the position of %[1]s in Variants "+
			"or -1 if %[1]s isn't a variant.\n"+
			"func (%[1]s %[2]s) Ordinal() int {\n\tswitch %[1]s {\n",
		recv, t.Name,
	)
	for i, v := range t.Variants {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn %d\n", v, i)
	}
	b.WriteString("\t}\n\treturn -1\n}\n")
}

// receiverName returns a receiver name not shadowing any variant.
func receiverName(t *Type) string {
	r := "x"
	for i := 0; i < len(t.Variants); i++ {
		if t.Variants[i] == r {
			r += "_"
			i = -1
		}
	}
	return r
}
