// Package walk is outgrep's directory walker: the out-of-scope
// collaborator (spec.md §1) that discovers which files the core
// operates on. It applies include/exclude globs and .gitignore rules,
// rejects binary files before they reach the parser, and fans work
// out across a bounded worker pool, grounded in the teacher's
// errgroup-based concurrency style (internal/mcp/integration_test.go).
package walk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/tomwhiting/outgrep/internal/config"
	"github.com/tomwhiting/outgrep/internal/diag"
)

// File is one file selected for processing.
type File struct {
	Path string // root joined with the file's path below it; absolute only when root is
	Size int64
}

// Discover walks root applying cfg's include/exclude globs, gitignore
// rules, binary-extension rejection, and max-file-size limit,
// returning every file that survives. stats may be nil.
func Discover(root string, cfg config.Walk, stats *diag.Stats) ([]File, error) {
	gi := &gitignore{}
	if cfg.RespectGitignore {
		gi = loadGitignore(root)
	}

	skip := func() {
		if stats != nil {
			stats.IncFilesSkipped()
		}
	}

	var out []File
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if stats != nil {
				stats.IncIOErrors()
			}
			return nil
		}
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			if cfg.RespectGitignore && path != root {
				if relDir, relErr := filepath.Rel(root, path); relErr == nil && gi.ignores(filepath.ToSlash(relDir)) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if cfg.RespectGitignore && gi.ignores(rel) {
			skip()
			return nil
		}
		if len(cfg.Include) > 0 && !matchesAny(cfg.Include, rel) {
			return nil
		}
		if matchesAny(cfg.Exclude, rel) {
			skip()
			return nil
		}
		if cfg.MaxFileSizeBytes > 0 && info.Size() > cfg.MaxFileSizeBytes {
			skip()
			return nil
		}
		if IsBinaryByExtension(path) {
			skip()
			return nil
		}

		out = append(out, File{Path: path, Size: info.Size()})
		return nil
	})
	return out, err
}

func matchesAny(globs []string, rel string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// Run fans work across a bounded pool of goroutines, calling process
// for each file. It stops launching new work and returns the first
// error once any process call fails, and respects ctx cancellation —
// the errgroup.SetLimit pattern the teacher uses for bounded
// concurrency (internal/mcp/integration_test.go).
func Run(ctx context.Context, files []File, concurrency int, stats *diag.Stats, process func(context.Context, File) error) error {
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, f := range files {
		f := f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if stats != nil {
				stats.IncFilesWalked()
			}
			return process(gctx, f)
		})
	}

	return g.Wait()
}
