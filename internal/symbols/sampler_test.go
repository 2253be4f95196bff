package symbols

import (
	"testing"

	"github.com/tomwhiting/outgrep/internal/lang"
	"github.com/tomwhiting/outgrep/internal/syntax"
)

const sampleGoSource = `package main

func first() {
	println("one")
}

func second() {
	println("two")
}

type Thing struct {
	Name string
}
`

func TestSample_FindsEveryTopLevelSymbol(t *testing.T) {
	tree, err := syntax.Parse(lang.Go, []byte(sampleGoSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	units := Sample(tree, nil)
	if len(units) == 0 {
		t.Fatal("expected at least one sampled unit")
	}

	var sawFirst, sawSecond, sawThing bool
	for _, u := range units {
		switch {
		case contains(u.Text, "func first"):
			sawFirst = true
		case contains(u.Text, "func second"):
			sawSecond = true
		case contains(u.Text, "type Thing"):
			sawThing = true
		}
	}
	if !sawFirst || !sawSecond || !sawThing {
		t.Errorf("missing expected symbols: first=%v second=%v thing=%v", sawFirst, sawSecond, sawThing)
	}
}

func TestSample_DeduplicatesByRange(t *testing.T) {
	tree, err := syntax.Parse(lang.Go, []byte(sampleGoSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	units := Sample(tree, nil)
	seen := make(map[string]bool)
	for _, u := range units {
		key := u.Text
		if seen[key] {
			t.Errorf("duplicate unit emitted for text %q", key)
		}
		seen[key] = true
	}
}

func TestSample_NoSymbolsFallsBackToWholeFile(t *testing.T) {
	src := "// just a comment, no declarations\n"
	tree, err := syntax.Parse(lang.Go, []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	units := Sample(tree, nil)
	if len(units) != 1 {
		t.Fatalf("expected a single whole-file fallback unit, got %d", len(units))
	}
	if units[0].Text != src {
		t.Errorf("fallback unit text = %q, want the whole file %q", units[0].Text, src)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
