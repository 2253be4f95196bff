package termout

import (
	"bytes"
	"testing"

	"github.com/tomwhiting/outgrep/internal/matchpipe"
	"github.com/tomwhiting/outgrep/internal/model"
)

func TestWriteFile_RendersHeaderAndLines(t *testing.T) {
	rf := matchpipe.RenderedFile{
		Path: "main.go",
		Symbols: []matchpipe.Symbol{
			{
				Context: model.ContextResult{SymbolName: "main", Kind: model.ContextFunction},
				Lines: []matchpipe.Line{
					{Number: 3, Text: `println("hi")`, IsMatchLine: true, MatchSpans: []model.ByteRange{{Start: 0, End: 7}}},
				},
			},
		},
	}

	var buf bytes.Buffer
	WriteFile(&buf, rf)

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("main.go")) {
		t.Error("expected output to contain the file path")
	}
	if !bytes.Contains([]byte(out), []byte(`println("hi")`)) {
		t.Error("expected output to contain the line text")
	}
}

func TestHighlightLine_NoMatchSpansReturnsTextUnchanged(t *testing.T) {
	l := matchpipe.Line{Text: "plain line", MatchSpans: nil}
	if got := highlightLine(l); got != "plain line" {
		t.Errorf("highlightLine = %q, want unchanged text", got)
	}
}
