package semantic

import (
	"testing"

	"github.com/tomwhiting/outgrep/internal/embedding"
)

const semanticGoSource = `package main

func addNumbers(a, b int) int {
	return a + b
}

func greetUser(name string) string {
	return "hello " + name
}
`

func TestSearchFile_UnsupportedLanguageEmitsNothing(t *testing.T) {
	eng := embedding.NewFallback()
	cfg := DefaultConfig()

	_, ok := SearchFile("data.bin", []byte("anything"), "greet", eng, cfg, nil)
	if ok {
		t.Error("expected no match for an unsupported extension")
	}
}

func TestSearchFile_FallbackEngineIsRunnable(t *testing.T) {
	eng := embedding.NewFallback()
	cfg := DefaultConfig()
	// The hash fallback carries no semantic meaning, so similarity is not
	// expected to be meaningful; only that the query path does not error
	// or panic and respects the configured threshold (spec.md §4.E).
	cfg.SimilarityThreshold = -1

	matches, ok := SearchFile("main.go", []byte(semanticGoSource), "add two numbers", eng, cfg, nil)
	if !ok {
		t.Fatal("expected at least one match with an unconditional threshold")
	}
	if len(matches) > cfg.MaxResults {
		t.Errorf("returned %d matches, want at most %d", len(matches), cfg.MaxResults)
	}
	for _, m := range matches {
		if m.Similarity < -1 || m.Similarity > 1 {
			t.Errorf("similarity %v out of [-1, 1] range", m.Similarity)
		}
	}
}

func TestSearchFile_ResultsSortedDescendingBySimilarity(t *testing.T) {
	eng := embedding.NewFallback()
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = -1

	matches, ok := SearchFile("main.go", []byte(semanticGoSource), "query", eng, cfg, nil)
	if !ok {
		t.Fatal("expected matches")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not sorted descending: %v before %v", matches[i-1].Similarity, matches[i].Similarity)
		}
	}
}
