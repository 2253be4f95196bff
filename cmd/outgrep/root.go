package main

import (
	"github.com/spf13/cobra"

	"github.com/tomwhiting/outgrep/internal/diag"
	"github.com/tomwhiting/outgrep/internal/version"
)

// exitCode carries the process exit status a subcommand decided on
// (spec.md §6: 0 match, 1 no match, 2 error). A cobra RunE returning
// an error always overrides this with 2, so subcommands only ever set
// it to 0 or 1.
var exitCode int

var (
	flagRoot    string
	flagInclude []string
	flagExclude []string
	flagNoColor bool
	flagStats   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "outgrep",
	Short:   "AST-aware and semantic source code search",
	Version: version.Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			diag.Enable(nil)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "project root to search")
	rootCmd.PersistentFlags().StringSliceVar(&flagInclude, "include", nil, "include glob, repeatable (overrides config)")
	rootCmd.PersistentFlags().StringSliceVar(&flagExclude, "exclude", nil, "exclude glob, repeatable (extends config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagStats, "stats", false, "print run counters to stderr on exit")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable trace diagnostics on stderr")

	rootCmd.AddCommand(grepCmd, semanticCmd, downloadModelCmd)
}
