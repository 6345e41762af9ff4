package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

const EnvLogLevel = "ENUMGEN_LOG_LEVEL"
const DefaultConfigPath = "."

// LogLevels lists the accepted values of EnvLogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Command can be any of:
//
//	CommandGenerate
type Command any

type CommandGenerate struct {
	// ConfigPath is the path of the config file or the directory
	// containing it. Empty if Types is set.
	ConfigPath string

	Types  []string
	Dir    string
	Output string

	LogLevel string
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "enumgen"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" generate - generates Variants and Ordinal methods for key types",
			" help - prints this help",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "generate":
		c := CommandGenerate{LogLevel: os.Getenv(EnvLogLevel)}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s generate [-config <path>]", executableName),
				fm("       %s generate -type <T[,U]> "+
					"[-dir <path>] [-output <file>]", executableName),
				"",
				"flags:",
				"-config <path>: config file or directory "+
					"containing enumgen.yaml (default: .)",
				"-type <names>: comma-separated list of type names",
				"-dir <path>: package directory or pattern (default: .)",
				"-output <file>: output file name "+
					"(default: <type>_enum.go)",
				"",
				"environment variables:",
				fm("%s: one of %s (default: info)",
					EnvLogLevel, strings.Join(LogLevels, ", ")),
			)
		}

		var types string
		flags.StringVar(&c.ConfigPath, "config", DefaultConfigPath, "")
		flags.StringVar(&types, "type", "", "")
		flags.StringVar(&c.Dir, "dir", "", "")
		flags.StringVar(&c.Output, "output", "", "")
		if !parseFlags() {
			return nil
		}

		set := map[string]bool{}
		flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if set["config"] && set["type"] {
			writeLines(w, "-config and -type can't be used together.")
			flags.Usage()
			return nil
		}
		if !set["type"] && (set["dir"] || set["output"]) {
			writeLines(w, "-dir and -output require -type.")
			flags.Usage()
			return nil
		}
		if set["type"] {
			c.ConfigPath = ""
			for _, t := range strings.Split(types, ",") {
				if t = strings.TrimSpace(t); t != "" {
					c.Types = append(c.Types, t)
				}
			}
			if len(c.Types) < 1 {
				writeLines(w, "-type is empty.")
				flags.Usage()
				return nil
			}
		}

		if c.LogLevel == "" {
			c.LogLevel = "info"
		} else if !slices.Contains(LogLevels, c.LogLevel) {
			writeLines(w,
				fm("%s contains an invalid log level: %q",
					EnvLogLevel, c.LogLevel),
			)
			flags.Usage()
			return nil
		}

		cmd = c

	case "help":
		PrintHelp(w, executableName)
		return nil

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer, executableName string) {
	writeLines(w,
		executableName+" generates enum.Enum implementations "+
			"for integer types declared with constants.",
		"",
		fmt.Sprintf("run '%s generate -h' for the list of flags.", executableName),
	)
}
