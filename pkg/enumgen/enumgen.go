// Package enumgen generates implementations of the enum.Enum interface
// for integer types declared with a list of constants, similar to
// golang.org/x/tools/cmd/stringer.
//
// For every type the generated file declares a Variants method listing
// the constants in declaration order and an Ordinal method returning
// a constant's position in that list.
package enumgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"
	"golang.org/x/tools/go/packages"
)

var ErrNoPackage = errors.New("no package matched")

// Load loads and type-checks the package matched by pattern
// relative to dir.
func Load(dir, pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir: dir,
	}, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", pattern, err)
	}
	if len(pkgs) < 1 {
		return nil, fmt.Errorf("loading %q: %w", pattern, ErrNoPackage)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf(
			"loading %q: %d packages matched, expected one",
			pattern, len(pkgs),
		)
	}
	p := pkgs[0]
	if len(p.Errors) > 0 {
		msgs := make([]string, len(p.Errors))
		for i := range p.Errors {
			msgs[i] = p.Errors[i].Error()
		}
		return nil, fmt.Errorf(
			"loading %q: %s", pattern, strings.Join(msgs, "; "),
		)
	}
	return p, nil
}

// Generator generates files according to a Config.
type Generator struct {
	log log.Logger

	// Dir is the directory patterns are resolved against.
	Dir string
}

// New creates a new generator logging to l.
func New(dir string, l log.Logger) *Generator {
	return &Generator{log: l, Dir: dir}
}

// Run loads the package configured by c, generates the source file
// and writes it to the package directory.
// Returns the path of the written file.
func (g *Generator) Run(c *Config) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	lp, err := Load(g.Dir, c.Package)
	if err != nil {
		return "", err
	}

	p, err := Inspect(lp.Types, c.Types)
	if err != nil {
		return "", err
	}
	if len(lp.GoFiles) < 1 {
		return "", fmt.Errorf("package %s has no Go files", lp.PkgPath)
	}
	p.Dir = filepath.Dir(lp.GoFiles[0])
	for _, t := range p.Types {
		g.log.Info().
			Str("package", lp.PkgPath).
			Str("type", t.Name).
			Int("variants", len(t.Variants)).
			Msg("generating")
	}

	src, err := Generate(p)
	if err != nil {
		return "", err
	}

	out := filepath.Join(p.Dir, c.Output)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %q: %w", out, err)
	}
	g.log.Info().
		Str("file", out).
		Int("bytes", len(src)).
		Msg("written")
	return out, nil
}
