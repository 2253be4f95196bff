// Package matchpipe is the Match-Context Pipeline (spec.md §4.M): it
// consumes a file's regex matches, resolves the enclosing symbol for
// each via internal/context, deduplicates by symbol range, and renders
// each surviving symbol with both match-highlight and syntax-highlight
// composed into one pass (spec.md §9, "Highlight overlap priority").
package matchpipe

import (
	"bytes"
	"sort"

	"github.com/tomwhiting/outgrep/internal/context"
	"github.com/tomwhiting/outgrep/internal/highlight"
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
	"github.com/tomwhiting/outgrep/internal/syntax"
)

// Line is one rendered line of a symbol's excerpt.
type Line struct {
	Number      int // 1-based, absolute within the file
	Text        string
	IsMatchLine bool
	MatchSpans  []model.ByteRange   // line-local byte offsets into Text
	SyntaxSpans []model.HighlightToken // line-local, clipped and translated
}

// Symbol is one deduplicated, rendered enclosing context.
type Symbol struct {
	Context model.ContextResult
	Lines   []Line
}

// RenderedFile is the full output for one file: at most one header,
// and the symbols that survived dedup, in DFS/input order.
type RenderedFile struct {
	Path    string
	Symbols []Symbol
}

// Render runs the full pipeline for one file and reports whether
// anything was emitted (spec.md's has_match). An empty matches slice
// or a file with no enclosing symbols for any match both yield
// hasMatch == false, with zero Symbols.
func Render(path string, tree *syntax.Tree, matches []model.MatchRange, kinds map[model.ContextKind]bool) (RenderedFile, bool) {
	result := RenderedFile{Path: path}
	if len(matches) == 0 {
		return result, false
	}

	source := tree.Source()
	type emittedKey struct{ start, end uint }
	emitted := make(map[emittedKey]bool)

	for _, m := range matches {
		ctxResult, err := context.Resolve(tree, m, kinds)
		if err != nil {
			if _, ok := err.(*ogerrors.NoEnclosingSymbol); ok {
				continue
			}
			continue
		}

		key := emittedKey{ctxResult.Range.Start, ctxResult.Range.End}
		if emitted[key] {
			continue
		}
		emitted[key] = true

		lines := renderLines(source, ctxResult.Range, matches)
		result.Symbols = append(result.Symbols, Symbol{Context: ctxResult, Lines: lines})
	}

	return result, len(result.Symbols) > 0
}

// renderLines implements spec.md §4.M's line renderer: split the
// symbol's text on '\n' preserving absolute offsets, classify each
// line as a match or context line, and compose match-highlight and
// syntax-highlight spans for it.
func renderLines(source []byte, symRange model.ByteRange, allMatches []model.MatchRange) []Line {
	startLine := 1 + bytes.Count(source[:symRange.Start], []byte{'\n'})

	fileTokens := highlight.Highlight(source)

	var lines []Line
	lineStart := symRange.Start
	lineNo := startLine

	flush := func(lb, le uint) {
		lineRange := model.ByteRange{Start: lb, End: le}
		text := string(source[lb:le])

		matchSpans, isMatchLine := mergedMatchSpans(allMatches, lineRange)
		syntaxSpans := highlight.Clip(fileTokens, lineRange)

		lines = append(lines, Line{
			Number:      lineNo,
			Text:        text,
			IsMatchLine: isMatchLine,
			MatchSpans:  matchSpans,
			SyntaxSpans: syntaxSpans,
		})
		lineNo++
	}

	for i := symRange.Start; i < symRange.End; i++ {
		if source[i] == '\n' {
			flush(lineStart, i)
			lineStart = i + 1
		}
	}
	if lineStart < symRange.End {
		flush(lineStart, symRange.End)
	}

	return lines
}

// mergedMatchSpans finds every match overlapping [lb, le), translates
// each to line-local offsets, and merges overlapping spans into one.
// If, due to multi-byte or off-by-one drift, no match range is valid
// inside the line, it falls back to highlighting the whole line — an
// explicit fallback per spec.md §4.M, not an error.
func mergedMatchSpans(allMatches []model.MatchRange, lineRange model.ByteRange) ([]model.ByteRange, bool) {
	var raw []model.ByteRange
	for _, m := range allMatches {
		if m.Start < lineRange.End && m.End > lineRange.Start {
			start := m.Start
			if start < lineRange.Start {
				start = lineRange.Start
			}
			end := m.End
			if end > lineRange.End {
				end = lineRange.End
			}
			if start < end {
				raw = append(raw, model.ByteRange{
					Start: start - lineRange.Start,
					End:   end - lineRange.Start,
				})
			}
		}
	}

	if len(raw) == 0 {
		return nil, false
	}

	isMatchLine := true
	merged := mergeSpans(raw)
	if len(merged) == 0 {
		// Drift produced no valid in-line range: fall back to the whole line.
		return []model.ByteRange{{Start: 0, End: lineRange.End - lineRange.Start}}, isMatchLine
	}
	return merged, isMatchLine
}

func mergeSpans(spans []model.ByteRange) []model.ByteRange {
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	out := make([]model.ByteRange, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.Start <= cur.End {
			if s.End > cur.End {
				cur.End = s.End
			}
			continue
		}
		out = append(out, cur)
		cur = s
	}
	out = append(out, cur)
	return out
}
