// Package highlight is the Syntax Highlighter (spec.md §4.H): a
// lexical — not AST-based — classifier over a full file, producing a
// non-overlapping, sorted set of HighlightTokens that can later be
// clipped to a sub-range. It deliberately does not walk the CST:
// AST ranges fragment identifiers and fail to span keywords cleanly
// (spec.md §4.H), so a flat byte scan is used instead.
package highlight

import (
	"sort"

	"github.com/tomwhiting/outgrep/internal/model"
)

// keywords is the union of keyword sets across outgrep's supported
// languages. The core spec only requires a single unified set; per
// spec.md §4.H implementers "may narrow per-language" but are not
// required to.
var keywords = buildKeywordSet(
	// control flow / declarations common to C-like, Python, Rust, Go, Ruby...
	"if", "else", "elif", "for", "while", "do", "switch", "case", "default",
	"break", "continue", "return", "yield", "goto", "defer",
	"func", "fn", "def", "function", "lambda", "proc",
	"class", "struct", "interface", "trait", "impl", "enum", "union", "module",
	"namespace", "package", "import", "export", "from", "use", "using",
	"public", "private", "protected", "internal", "static", "final", "const",
	"let", "var", "val", "mut", "type", "typedef", "typealias",
	"new", "delete", "this", "self", "super", "nil", "null", "none", "true", "false",
	"try", "catch", "finally", "throw", "throws", "raise", "except",
	"async", "await", "yield", "in", "is", "as", "not", "and", "or",
	"extends", "implements", "virtual", "override", "abstract", "sealed",
	"template", "generic", "where", "match", "when", "with", "begin", "end",
	"def", "end", "then", "unless", "until", "require", "require_relative",
	"pub", "fn", "mod", "crate", "unsafe", "dyn", "ref", "move",
)

func buildKeywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Highlight classifies source once and returns a sorted, non-overlapping
// token list spanning the whole file.
func Highlight(source []byte) []model.HighlightToken {
	var candidates []model.HighlightToken

	candidates = append(candidates, keywordTokens(source)...)
	candidates = append(candidates, stringTokens(source)...)
	candidates = append(candidates, commentTokens(source)...)

	accepted := make([]model.HighlightToken, 0, len(candidates))
	for _, tok := range candidates {
		if !overlapsAny(accepted, tok.Range) {
			accepted = append(accepted, tok)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Range.Start < accepted[j].Range.Start
	})
	return accepted
}

func overlapsAny(tokens []model.HighlightToken, r model.ByteRange) bool {
	for _, t := range tokens {
		if r.Start < t.Range.End && t.Range.Start < r.End {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// keywordTokens finds keyword occurrences bounded by non-alphanumeric
// neighbors (spec.md §4.H: "neighbor must not be alphanumeric").
func keywordTokens(source []byte) []model.HighlightToken {
	var out []model.HighlightToken
	n := len(source)
	i := 0
	for i < n {
		if !isWordByte(source[i]) {
			i++
			continue
		}
		start := i
		for i < n && isWordByte(source[i]) {
			i++
		}
		word := string(source[start:i])
		if keywords[word] {
			leftOK := start == 0 || !isWordByte(source[start-1])
			rightOK := i == n || !isWordByte(source[i])
			if leftOK && rightOK {
				out = append(out, model.HighlightToken{
					Range: model.ByteRange{Start: uint(start), End: uint(i)},
					Class: model.ClassKeyword,
				})
			}
		}
	}
	return out
}

// stringTokens finds "..." and '...' spans. The first unescaped quote
// opens a span until the next quote of the same kind; nested quotes of
// the other kind are not special-cased, matching spec.md §4.H which
// does not require escape handling beyond "must not crash".
func stringTokens(source []byte) []model.HighlightToken {
	var out []model.HighlightToken
	n := len(source)
	i := 0
	for i < n {
		c := source[i]
		if c != '"' && c != '\'' {
			i++
			continue
		}
		quote := c
		start := i
		i++
		for i < n {
			if source[i] == '\\' && i+1 < n {
				i += 2
				continue
			}
			if source[i] == quote {
				i++
				break
			}
			i++
		}
		out = append(out, model.HighlightToken{
			Range: model.ByteRange{Start: uint(start), End: uint(i)},
			Class: model.ClassString,
		})
	}
	return out
}

// commentTokens finds "//" and "#" line comments, each running to the
// next '\n' or end of file.
func commentTokens(source []byte) []model.HighlightToken {
	var out []model.HighlightToken
	n := len(source)
	i := 0
	for i < n {
		isSlashSlash := source[i] == '/' && i+1 < n && source[i+1] == '/'
		isHash := source[i] == '#'
		if !isSlashSlash && !isHash {
			i++
			continue
		}
		start := i
		for i < n && source[i] != '\n' {
			i++
		}
		out = append(out, model.HighlightToken{
			Range: model.ByteRange{Start: uint(start), End: uint(i)},
			Class: model.ClassComment,
		})
	}
	return out
}

// Clip restricts tokens to [r.Start, r.End) and translates surviving
// spans to offsets relative to r.Start, for rendering one excerpt line
// at a time (spec.md §4.M).
func Clip(tokens []model.HighlightToken, r model.ByteRange) []model.HighlightToken {
	var out []model.HighlightToken
	for _, t := range tokens {
		if t.Range.End <= r.Start || t.Range.Start >= r.End {
			continue
		}
		start := t.Range.Start
		if start < r.Start {
			start = r.Start
		}
		end := t.Range.End
		if end > r.End {
			end = r.End
		}
		if start >= end {
			continue
		}
		out = append(out, model.HighlightToken{
			Range: model.ByteRange{Start: start - r.Start, End: end - r.Start},
			Class: t.Class,
		})
	}
	return out
}
