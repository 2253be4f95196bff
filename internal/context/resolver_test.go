package context

import (
	"testing"

	"github.com/tomwhiting/outgrep/internal/lang"
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
	"github.com/tomwhiting/outgrep/internal/syntax"
)

const rustSource = `fn main() {
    println!("hello");
}

fn other() {
    let x = 1;
}
`

func byteOffset(source, needle string) uint {
	for i := 0; i+len(needle) <= len(source); i++ {
		if source[i:i+len(needle)] == needle {
			return uint(i)
		}
	}
	return 0
}

// TestResolve_RustFunctionExtraction mirrors the first seed scenario
// in spec.md §8: a match inside fn main's body resolves to the
// enclosing function_item named "main".
func TestResolve_RustFunctionExtraction(t *testing.T) {
	tree, err := syntax.Parse(lang.Rust, []byte(rustSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	start := byteOffset(rustSource, "println")
	m := model.MatchRange{Start: start, End: start + uint(len("println"))}

	result, err := Resolve(tree, m, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Kind != model.ContextFunction {
		t.Errorf("Kind = %v, want ContextFunction", result.Kind)
	}
	if result.SymbolName != "main" {
		t.Errorf("SymbolName = %q, want %q", result.SymbolName, "main")
	}
}

func TestResolve_DedupAcrossMatchesInSameSymbol(t *testing.T) {
	tree, err := syntax.Parse(lang.Rust, []byte(rustSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	start := byteOffset(rustSource, "println")
	m1 := model.MatchRange{Start: start, End: start + 1}
	m2 := model.MatchRange{Start: start + 2, End: start + 3}

	r1, err := Resolve(tree, m1, nil)
	if err != nil {
		t.Fatalf("Resolve(m1): %v", err)
	}
	r2, err := Resolve(tree, m2, nil)
	if err != nil {
		t.Fatalf("Resolve(m2): %v", err)
	}

	if r1.Range != r2.Range {
		t.Errorf("two matches inside the same function resolved to different ranges: %v vs %v", r1.Range, r2.Range)
	}
}

func TestResolve_NoEnclosingSymbol(t *testing.T) {
	tree, err := syntax.Parse(lang.Rust, []byte(rustSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	// Restrict to a kind that cannot match anything in this source.
	allowed := map[model.ContextKind]bool{model.ContextClass: true}
	start := byteOffset(rustSource, "println")
	m := model.MatchRange{Start: start, End: start + 1}

	_, err = Resolve(tree, m, allowed)
	if err == nil {
		t.Fatal("expected NoEnclosingSymbol error")
	}
	if _, ok := err.(*ogerrors.NoEnclosingSymbol); !ok {
		t.Errorf("err = %T, want *ogerrors.NoEnclosingSymbol", err)
	}
}

func TestResolve_InvalidOffset(t *testing.T) {
	tree, err := syntax.Parse(lang.Rust, []byte(rustSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	m := model.MatchRange{Start: uint(len(rustSource) + 10), End: uint(len(rustSource) + 11)}
	_, err = Resolve(tree, m, nil)
	if _, ok := err.(*ogerrors.InvalidOffset); !ok {
		t.Errorf("err = %T, want *ogerrors.InvalidOffset", err)
	}
}

func TestResolve_DepthMaximality(t *testing.T) {
	tree, err := syntax.Parse(lang.Rust, []byte(rustSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	start := byteOffset(rustSource, "let x")
	m := model.MatchRange{Start: start, End: start + 1}

	result, err := Resolve(tree, m, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.SymbolName != "other" {
		t.Errorf("SymbolName = %q, want %q (the innermost enclosing function)", result.SymbolName, "other")
	}
}
