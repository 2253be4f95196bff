package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Semantic.Dim != 384 {
		t.Errorf("Dim = %d, want default 384", cfg.Semantic.Dim)
	}
	if cfg.Semantic.MaxResults != 10 {
		t.Errorf("MaxResults = %d, want default 10", cfg.Semantic.MaxResults)
	}
}

const testKDL = `
project {
    root "."
}

include "**/*.go"

exclude "**/.git/**" "**/vendor/**"

semantic {
    dim 384
    similarity_threshold 0.35
    max_results 5
    model_dir "/opt/models/minilm"
}
`

func TestLoad_ParsesKDLOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".outgrep.kdl"), []byte(testKDL), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Semantic.SimilarityThreshold != 0.35 {
		t.Errorf("SimilarityThreshold = %v, want 0.35", cfg.Semantic.SimilarityThreshold)
	}
	if cfg.Semantic.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.Semantic.MaxResults)
	}
	if cfg.Semantic.ModelDir != "/opt/models/minilm" {
		t.Errorf("ModelDir = %q, want /opt/models/minilm", cfg.Semantic.ModelDir)
	}
	if len(cfg.Walk.Exclude) != 2 {
		t.Errorf("Exclude = %v, want 2 entries", cfg.Walk.Exclude)
	}
}
