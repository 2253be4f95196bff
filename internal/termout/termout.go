// Package termout renders matchpipe.RenderedFile results to a
// terminal, coloring file paths, line numbers, and match highlights
// the way ripgrep-lineage tools conventionally do. Grounded in
// termfx-morfx's fatih/color usage pattern (demo/cmd/main.go):
// pre-built SprintFunc()s rather than calling color.New per line.
package termout

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tomwhiting/outgrep/internal/matchpipe"
	"github.com/tomwhiting/outgrep/internal/model"
)

var (
	pathColor   = color.New(color.FgMagenta, color.Bold).SprintFunc()
	lineNoColor = color.New(color.FgGreen).SprintFunc()
	matchColor  = color.New(color.FgRed, color.Bold).SprintFunc()
	symbolColor = color.New(color.FgCyan).SprintFunc()
)

// WriteFile prints one RenderedFile in ripgrep-style grouped output:
// one colored path header for the file, then for each symbol a
// name/kind line followed by its lines, with match spans highlighted
// in place.
func WriteFile(w io.Writer, rf matchpipe.RenderedFile) {
	if len(rf.Symbols) > 0 {
		fmt.Fprintln(w, pathColor(rf.Path))
	}
	for _, sym := range rf.Symbols {
		fmt.Fprintf(w, "%s %s\n", symbolName(sym.Context), string(sym.Context.Kind))
		for _, line := range sym.Lines {
			fmt.Fprintf(w, "%s:%s\n", lineNoColor(line.Number), highlightLine(line))
		}
		fmt.Fprintln(w)
	}
}

func symbolName(ctx model.ContextResult) string {
	if ctx.SymbolName == "" {
		return "<anonymous>"
	}
	return symbolColor(ctx.SymbolName)
}

// highlightLine composes match spans over a line's plain text. It
// does not additionally render syntax-highlight spans to the
// terminal: ripgrep-lineage tools conventionally highlight only the
// match, not full syntax color, in grep-style output.
func highlightLine(l matchpipe.Line) string {
	if len(l.MatchSpans) == 0 {
		return l.Text
	}

	var out []byte
	prev := 0
	for _, span := range l.MatchSpans {
		start, end := int(span.Start), int(span.End)
		if start > len(l.Text) || end > len(l.Text) || start >= end || start < prev {
			continue
		}
		out = append(out, l.Text[prev:start]...)
		out = append(out, []byte(matchColor(l.Text[start:end]))...)
		prev = end
	}
	out = append(out, l.Text[prev:]...)
	return string(out)
}
