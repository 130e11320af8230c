// Package main provides the behaviors demo CLI.
//
// Usage:
//
//	behaviors tabs [--position top|bottom|left|right] [--wrap] [--collapsible]
//	behaviors modes [--names a,b,c]
//	behaviors version
//
// Every command accepts --backend tea|tcell, --log-file, --log-level and
// --config. Settings can also be given as BEHAVIORS_* environment variables,
// for example BEHAVIORS_TABS_POSITION=left.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	root := newCLI(runBackend).rootCommand(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
