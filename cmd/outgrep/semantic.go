package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomwhiting/outgrep/internal/diag"
	"github.com/tomwhiting/outgrep/internal/embedding"
	"github.com/tomwhiting/outgrep/internal/semantic"
	"github.com/tomwhiting/outgrep/internal/walk"

	"github.com/tomwhiting/outgrep/pkg/pathutil"
)

var (
	semanticOnnxLib string
	semanticTopK    int
	semanticMinSim  float64
)

var semanticCmd = &cobra.Command{
	Use:   "semantic <query> [paths...]",
	Short: "Semantic symbol search: rank symbols by meaning, not text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSemantic,
}

func init() {
	semanticCmd.Flags().StringVar(&semanticOnnxLib, "onnx-lib", "", "path to the onnxruntime shared library (default: system)")
	semanticCmd.Flags().IntVarP(&semanticTopK, "top", "k", 0, "max results (default: config's max_results)")
	semanticCmd.Flags().Float64Var(&semanticMinSim, "min-similarity", -2, "override the similarity threshold (default: config's)")
}

func runSemantic(cmd *cobra.Command, args []string) error {
	query := args[0]
	paths := args[1:]
	if len(paths) == 0 {
		paths = []string{flagRoot}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	semCfg := semantic.Config{
		Dim:                 cfg.Semantic.Dim,
		SimilarityThreshold: cfg.Semantic.SimilarityThreshold,
		MaxResults:          cfg.Semantic.MaxResults,
	}
	if semanticTopK > 0 {
		semCfg.MaxResults = semanticTopK
	}
	if semanticMinSim > -1 {
		semCfg.SimilarityThreshold = float32(semanticMinSim)
	}

	eng, err := embedding.Load(cfg.Semantic.ModelDir, semanticOnnxLib)
	if err != nil {
		diag.Tracef("semantic: falling back to hash embedding: %v", err)
		eng = embedding.NewFallback()
	}
	defer eng.Close()

	stats := &diag.Stats{RunID: diag.NewRunID()}
	var files []walk.File
	for _, p := range paths {
		fs, err := walk.Discover(p, cfg.Walk, stats)
		if err != nil {
			return err
		}
		files = append(files, fs...)
	}

	pathColor := color.New(color.FgMagenta, color.Bold).SprintFunc()
	simColor := color.New(color.FgYellow).SprintFunc()

	var mu sync.Mutex
	var anyMatch atomic.Bool

	err = walk.Run(context.Background(), files, 4, stats, func(ctx context.Context, f walk.File) error {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			stats.IncIOErrors()
			fmt.Fprintf(os.Stderr, "outgrep: %s: %v\n", f.Path, err)
			return nil
		}
		if walk.IsBinaryByMagicNumber(content) {
			return nil
		}

		results, ok := semantic.SearchFile(pathutil.ToRelative(f.Path, flagRoot), content, query, eng, semCfg, cfg.Semantic.ContextKinds)
		if !ok {
			return nil
		}

		anyMatch.Store(true)
		mu.Lock()
		for _, r := range results {
			fmt.Printf("%s %s\n", pathColor(r.FilePath), simColor(fmt.Sprintf("%.3f", r.Similarity)))
			fmt.Println(r.Content)
			fmt.Println()
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	if flagStats {
		fmt.Fprintln(os.Stderr, stats.Snapshot().String())
	}

	if anyMatch.Load() {
		exitCode = 0
	} else {
		exitCode = 1
	}
	return nil
}
