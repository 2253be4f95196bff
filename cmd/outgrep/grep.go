package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/tomwhiting/outgrep/internal/diag"
	"github.com/tomwhiting/outgrep/internal/lang"
	"github.com/tomwhiting/outgrep/internal/matchpipe"
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/syntax"
	"github.com/tomwhiting/outgrep/internal/termout"
	"github.com/tomwhiting/outgrep/internal/walk"

	"github.com/tomwhiting/outgrep/pkg/pathutil"
)

var (
	grepIgnoreCase  bool
	grepConcurrency int
)

var grepCmd = &cobra.Command{
	Use:   "grep <pattern> [paths...]",
	Short: "AST-aware regex search: emit the smallest enclosing symbol per match",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGrep,
}

func init() {
	grepCmd.Flags().BoolVarP(&grepIgnoreCase, "ignore-case", "i", false, "case-insensitive match")
	grepCmd.Flags().IntVarP(&grepConcurrency, "concurrency", "c", 4, "bounded worker pool size")
}

func runGrep(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	if grepIgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	paths := args[1:]
	if len(paths) == 0 {
		paths = []string{flagRoot}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stats := &diag.Stats{RunID: diag.NewRunID()}
	var files []walk.File
	for _, p := range paths {
		fs, err := walk.Discover(p, cfg.Walk, stats)
		if err != nil {
			return err
		}
		files = append(files, fs...)
	}

	out := newPipeGuardWriter(os.Stdout)
	var mu sync.Mutex
	var anyMatch atomic.Bool

	err = walk.Run(context.Background(), files, grepConcurrency, stats, func(ctx context.Context, f walk.File) error {
		if out.broken {
			return nil
		}

		id, ok := lang.LanguageOf(f.Path)
		if !ok {
			return nil
		}

		content, err := os.ReadFile(f.Path)
		if err != nil {
			stats.IncIOErrors()
			fmt.Fprintf(os.Stderr, "outgrep: %s: %v\n", f.Path, err)
			return nil
		}
		if walk.IsBinaryByMagicNumber(content) {
			return nil
		}

		locs := re.FindAllIndex(content, -1)
		if len(locs) == 0 {
			return nil
		}
		matches := make([]model.MatchRange, len(locs))
		for i, l := range locs {
			matches[i] = model.MatchRange{Start: uint(l[0]), End: uint(l[1])}
		}

		tree, err := syntax.Parse(id, content)
		if err != nil {
			stats.IncParseFailures()
			fmt.Fprintf(os.Stderr, "outgrep: %s: %v\n", f.Path, err)
			return nil
		}
		defer tree.Close()
		stats.IncFilesParsed()

		rf, hasMatch := matchpipe.Render(pathutil.ToRelative(f.Path, flagRoot), tree, matches, cfg.Semantic.ContextKinds)
		if !hasMatch {
			return nil
		}

		anyMatch.Store(true)
		stats.AddMatchesEmitted(len(matches))

		mu.Lock()
		termout.WriteFile(out, rf)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	if flagStats {
		fmt.Fprintln(os.Stderr, stats.Snapshot().String())
	}

	if out.broken {
		exitCode = 0
		return nil
	}
	if anyMatch.Load() {
		exitCode = 0
	} else {
		exitCode = 1
	}
	return nil
}
