package enumgen_test

import (
	"testing"
	"testing/fstest"

	"github.com/graph-guard/enummap/pkg/enumgen"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	fs := fstest.MapFS{
		"gen/enumgen.yaml": {Data: []byte(
			"package: ./colors\n" +
				"output: colors_enum.go\n" +
				"types:\n" +
				"  - Color\n" +
				"  - Suit\n",
		)},
	}
	c, err := enumgen.ReadConfig(fs, "gen/enumgen.yaml")
	require.NoError(t, err)
	require.Equal(t, &enumgen.Config{
		Package: "./colors",
		Output:  "colors_enum.go",
		Types:   []string{"Color", "Suit"},
	}, c)
}

func TestReadConfigDefaults(t *testing.T) {
	fs := fstest.MapFS{
		"enumgen.yaml": {Data: []byte("types: [Color]\n")},
	}
	c, err := enumgen.ReadConfig(fs, "enumgen.yaml")
	require.NoError(t, err)
	require.Equal(t, &enumgen.Config{
		Package: ".",
		Output:  "color_enum.go",
		Types:   []string{"Color"},
	}, c)
}

func TestReadConfigErr(t *testing.T) {
	for _, td := range []struct {
		name   string
		data   string
		expect error
		msg    string
	}{
		{
			name:   "missing_types",
			data:   "package: .\n",
			expect: &enumgen.ErrorMissing{FilePath: "enumgen.yaml", Feature: "types"},
			msg:    "enumgen.yaml: types is required",
		},
		{
			name: "illegal_type_name",
			data: "types: [Color, 9lives]\n",
			expect: &enumgen.ErrorIllegal{
				FilePath: "enumgen.yaml",
				Feature:  "types[1]",
				Message:  "contains illegal character at index 0",
			},
			msg: "enumgen.yaml: invalid types[1]: " +
				"contains illegal character at index 0",
		},
		{
			name: "duplicate_type",
			data: "types: [Color, Color]\n",
			expect: &enumgen.ErrorIllegal{
				FilePath: "enumgen.yaml",
				Feature:  "types",
				Message:  "duplicate type Color",
			},
			msg: "enumgen.yaml: invalid types: duplicate type Color",
		},
		{
			name: "illegal_output",
			data: "types: [Color]\noutput: sub/out.go\n",
			expect: &enumgen.ErrorIllegal{
				FilePath: "enumgen.yaml",
				Feature:  "output",
				Message:  "must be a .go file name",
			},
			msg: "enumgen.yaml: invalid output: must be a .go file name",
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			fs := fstest.MapFS{"enumgen.yaml": {Data: []byte(td.data)}}
			c, err := enumgen.ReadConfig(fs, "enumgen.yaml")
			require.Nil(t, c)
			require.Equal(t, td.expect, err)
			require.Equal(t, td.msg, err.Error())
		})
	}
}

func TestReadConfigUnknownField(t *testing.T) {
	fs := fstest.MapFS{
		"enumgen.yaml": {Data: []byte("types: [Color]\nunknown: 1\n")},
	}
	c, err := enumgen.ReadConfig(fs, "enumgen.yaml")
	require.Nil(t, c)
	var e *enumgen.ErrorIllegal
	require.ErrorAs(t, err, &e)
	require.Equal(t, "config", e.Feature)
}

func TestFindConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		p, err := enumgen.FindConfig(fstest.MapFS{
			"d/enumgen.yaml": {},
		}, "d")
		require.NoError(t, err)
		require.Equal(t, "d/enumgen.yaml", p)
	})
	t.Run("yml", func(t *testing.T) {
		p, err := enumgen.FindConfig(fstest.MapFS{
			"d/enumgen.yml": {},
		}, "d")
		require.NoError(t, err)
		require.Equal(t, "d/enumgen.yml", p)
	})
	t.Run("conflict", func(t *testing.T) {
		p, err := enumgen.FindConfig(fstest.MapFS{
			"d/enumgen.yaml": {},
			"d/enumgen.yml":  {},
		}, "d")
		require.Zero(t, p)
		require.Equal(t, &enumgen.ErrorConflict{Files: []string{
			"d/enumgen.yaml", "d/enumgen.yml",
		}}, err)
		require.Equal(t,
			"ambiguous config: found d/enumgen.yaml and d/enumgen.yml",
			err.Error())
	})
	t.Run("missing", func(t *testing.T) {
		p, err := enumgen.FindConfig(fstest.MapFS{
			"d/other.yaml": {},
		}, "d")
		require.Zero(t, p)
		require.Equal(t, &enumgen.ErrorMissing{FilePath: "d/enumgen.yaml"}, err)
		require.Equal(t, "config file d/enumgen.yaml not found", err.Error())
	})
}
