// Package main is the entry point for the pbdata CLI.
//
// Usage:
//
//	pbdata [flags] <command> [args]
//
// Commands:
//
//	fill      - Stream data into a growable buffer and report its growth
//	classify  - Classify string values (integer, float, date, ...)
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/pbyhre/pb-cpp-data/cmd/pbdata/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
