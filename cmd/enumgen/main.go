package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/enummap/pkg/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandGenerate:
		if !generate(w, c) {
			os.Exit(1)
		}
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
}
