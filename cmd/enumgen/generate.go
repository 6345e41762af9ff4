package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/enummap/pkg/cli"
	"github.com/graph-guard/enummap/pkg/enumgen"
	"github.com/phuslu/log"
)

// generate executes c and reports whether it succeeded.
func generate(w io.Writer, c cli.CommandGenerate) bool {
	l := log.Logger{
		Level:  logLevel(c.LogLevel),
		Writer: &log.IOWriter{Writer: w},
	}
	l.Context = log.NewContext(nil).Str("cmd", "generate").Value()

	conf, err := readConfig(c)
	if err != nil {
		l.Error().Err(err).Msg("reading config")
		return false
	}
	l.Debug().
		Str("package", conf.Package).
		Strs("types", conf.Types).
		Str("output", conf.Output).
		Msg("config")

	dir := "."
	if c.ConfigPath != "" {
		// Patterns in config files are relative to the config file.
		if fi, err := os.Stat(c.ConfigPath); err == nil && fi.IsDir() {
			dir = c.ConfigPath
		} else {
			dir = filepath.Dir(c.ConfigPath)
		}
	}

	if _, err := enumgen.New(dir, l).Run(conf); err != nil {
		l.Error().Err(err).Msg("generating")
		return false
	}
	return true
}

func readConfig(c cli.CommandGenerate) (*enumgen.Config, error) {
	if len(c.Types) > 0 {
		conf := &enumgen.Config{
			Package: c.Dir,
			Output:  c.Output,
			Types:   c.Types,
		}
		return conf, conf.Validate()
	}

	fi, err := os.Stat(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		fsys := os.DirFS(c.ConfigPath)
		p, err := enumgen.FindConfig(fsys, ".")
		if err != nil {
			return nil, err
		}
		return enumgen.ReadConfig(fsys, p)
	}
	base, name := filepath.Split(c.ConfigPath)
	if base == "" {
		base = "."
	}
	return enumgen.ReadConfig(os.DirFS(base), name)
}

func logLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}
