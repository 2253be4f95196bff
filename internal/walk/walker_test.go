package walk

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/tomwhiting/outgrep/internal/config"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDiscover_ExcludesBinaryAndIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "image.png", "\x89PNG\r\n")
	writeFile(t, dir, "vendor/lib.go", "package lib\n")
	writeFile(t, dir, ".gitignore", "vendor/\n")

	cfg := config.Default(dir).Walk
	files, err := Discover(dir, cfg, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	var sawMain, sawImage, sawVendor bool
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f.Path)
		switch filepath.ToSlash(rel) {
		case "main.go":
			sawMain = true
		case "image.png":
			sawImage = true
		case "vendor/lib.go":
			sawVendor = true
		}
	}

	if !sawMain {
		t.Error("expected main.go to be discovered")
	}
	if sawImage {
		t.Error("image.png should be excluded as binary")
	}
	if sawVendor {
		t.Error("vendor/lib.go should be excluded by the default exclusion globs")
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	files := []File{{Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "d"}}

	var active, maxActive atomic.Int32
	err := Run(context.Background(), files, 2, nil, func(ctx context.Context, f File) error {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if maxActive.Load() > 2 {
		t.Errorf("max concurrent workers = %d, want <= 2", maxActive.Load())
	}
}

func TestRun_PropagatesFirstError(t *testing.T) {
	files := []File{{Path: "a"}, {Path: "b"}}
	sentinel := errTest("boom")

	err := Run(context.Background(), files, 2, nil, func(ctx context.Context, f File) error {
		if f.Path == "a" {
			return sentinel
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error from Run")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
