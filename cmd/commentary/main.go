// Package main is the entry point for the commentary command.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/commentary/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(fmt.Sprintf("%s (commit %s, built %s)", version, commit, date))
	if err := root.Execute(); err != nil {
		if !errors.Is(err, cli.ErrFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
