package enumgen

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode"

	yaml "gopkg.in/yaml.v3"
)

const ConfigFile1 = "enumgen.yaml"
const ConfigFile2 = "enumgen.yml"
const DefaultPackage = "."
const OutputSuffix = "_enum.go"

// Config defines what gets generated.
type Config struct {
	// Package is a directory or import path pattern
	// accepted by golang.org/x/tools/go/packages.
	Package string `yaml:"package"`

	// Output is the name of the generated file
	// written to the package directory.
	Output string `yaml:"output"`

	// Types lists the names of the key types.
	Types []string `yaml:"types"`
}

// ReadConfig reads and validates the config file at path.
func ReadConfig(filesystem fs.FS, filePath string) (*Config, error) {
	f, err := filesystem.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	c := &Config{}
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		return nil, &ErrorIllegal{
			FilePath: filePath,
			Feature:  "config",
			Message:  err.Error(),
		}
	}
	if err := c.Validate(); err != nil {
		if e, ok := err.(*ErrorMissing); ok {
			e.FilePath = filePath
		} else if e, ok := err.(*ErrorIllegal); ok {
			e.FilePath = filePath
		}
		return nil, err
	}
	return c, nil
}

// FindConfig returns the path of the config file in dir.
func FindConfig(filesystem fs.FS, dir string) (string, error) {
	d, err := fs.ReadDir(filesystem, dir)
	if err != nil {
		return "", fmt.Errorf("reading config directory: %w", err)
	}
	var found string
	for _, o := range d {
		if o.IsDir() {
			continue
		}
		if n := o.Name(); n == ConfigFile1 || n == ConfigFile2 {
			if found != "" {
				return "", &ErrorConflict{Files: []string{
					path.Join(dir, ConfigFile1),
					path.Join(dir, ConfigFile2),
				}}
			}
			found = path.Join(dir, n)
		}
	}
	if found == "" {
		return "", &ErrorMissing{FilePath: path.Join(dir, ConfigFile1)}
	}
	return found, nil
}

// Validate checks c and sets defaults for omitted fields.
func (c *Config) Validate() error {
	if len(c.Types) < 1 {
		return &ErrorMissing{Feature: "types"}
	}
	for i, t := range c.Types {
		if msg := ValidateTypeName(t); msg != "" {
			return &ErrorIllegal{
				Feature: fmt.Sprintf("types[%d]", i),
				Message: msg,
			}
		}
	}
	if d := duplicate(c.Types); d != "" {
		return &ErrorIllegal{
			Feature: "types",
			Message: "duplicate type " + d,
		}
	}
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Output == "" {
		c.Output = strings.ToLower(c.Types[0]) + OutputSuffix
	} else if !strings.HasSuffix(c.Output, ".go") ||
		strings.ContainsAny(c.Output, `/\`) {
		return &ErrorIllegal{
			Feature: "output",
			Message: "must be a .go file name",
		}
	}
	return nil
}

// ValidateTypeName returns a non-empty message if n isn't a valid
// Go identifier.
func ValidateTypeName(n string) (err string) {
	if n == "" {
		return "empty"
	}
	for i, r := range n {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Sprintf("contains illegal character at index %d", i)
	}
	return ""
}

func duplicate(s []string) string {
	for i := range s {
		for i2 := i + 1; i2 < len(s); i2++ {
			if s[i] == s[i2] {
				return s[i]
			}
		}
	}
	return ""
}

// ErrorConflict is returned when a directory holds more than one
// config file.
type ErrorConflict struct {
	Files []string
}

func (e *ErrorConflict) Error() string {
	return "ambiguous config: found " + strings.Join(e.Files, " and ")
}

// ErrorMissing is returned when the config file or a required
// field in it is absent.
type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e *ErrorMissing) Error() string {
	if e.Feature == "" {
		return "config file " + e.FilePath + " not found"
	}
	return inFile(e.FilePath) + e.Feature + " is required"
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e *ErrorIllegal) Error() string {
	return inFile(e.FilePath) + "invalid " + e.Feature + ": " + e.Message
}

func inFile(filePath string) string {
	if filePath == "" {
		return ""
	}
	return filePath + ": "
}
