// Command outgrep is the CLI wiring for the AST-aware and semantic
// search cores (SPEC_FULL.md §A.4). It owns everything the cores
// deliberately do not: directory walking, config loading, terminal
// color output, and broken-pipe handling — mirroring the teacher's
// cmd/lci split between a thin main and per-command files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
