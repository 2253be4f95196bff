// Package model holds the core data types shared across outgrep's
// AST-aware and semantic search pipelines (spec.md §3). Byte ranges
// are half-open [start, end) over UTF-8 bytes throughout.
package model

// ByteRange is a half-open [Start, End) span over file bytes.
type ByteRange struct {
	Start uint
	End   uint
}

// Contains reports whether r fully contains other.
func (r ByteRange) Contains(other ByteRange) bool {
	return r.Start <= other.Start && r.End >= other.End
}

// Len returns the number of bytes the range spans.
func (r ByteRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// MatchRange is a regex match location in file bytes. Invariant:
// Start < End <= len(bytes).
type MatchRange = ByteRange

// ContextKind is one of the "interesting" enclosing-scope categories
// a Context Resolver will report.
type ContextKind string

const (
	ContextFunction ContextKind = "function"
	ContextClass    ContextKind = "class"
	ContextMethod   ContextKind = "method"
	ContextBlock    ContextKind = "block"
	ContextModule   ContextKind = "module"
	ContextTypeDef  ContextKind = "typedef"
)

// DefaultContextKinds is the set used unless a caller narrows it.
// Block and TypeDef are excluded: in languages like Rust a block nests
// inside the function that owns it, so including Block would let the
// resolver match the bare block instead of climbing to the enclosing
// function, class, method, or module.
func DefaultContextKinds() map[ContextKind]bool {
	return map[ContextKind]bool{
		ContextFunction: true,
		ContextClass:    true,
		ContextMethod:   true,
		ContextModule:   true,
	}
}

// ContextResult is the outcome of resolving the enclosing context for
// a match. Invariant: Range strictly contains the originating match
// range, and Depth is the number of ancestors traversed from the CST
// root to this node.
type ContextResult struct {
	Range      ByteRange
	Kind       ContextKind
	SymbolName string
	Depth      int
}

// HighlightClass classifies one lexical span produced by the Syntax
// Highlighter.
type HighlightClass string

const (
	ClassKeyword     HighlightClass = "keyword"
	ClassString      HighlightClass = "string"
	ClassComment     HighlightClass = "comment"
	ClassNumber      HighlightClass = "number"
	ClassIdentifier  HighlightClass = "identifier"
	ClassFunction    HighlightClass = "function"
	ClassType        HighlightClass = "type"
	ClassOperator    HighlightClass = "operator"
	ClassPunctuation HighlightClass = "punctuation"
)

// HighlightToken is one non-overlapping lexical span. Within one file,
// tokens are sorted by Range.Start and never overlap.
type HighlightToken struct {
	Range ByteRange
	Class HighlightClass
}

// Embedding is a fixed-dimension, L2-normalized float vector.
type Embedding struct {
	Vector []float32
	Dim    int
}

// SymbolUnit is a standalone semantic atom identified for embedding:
// a byte range plus the exact text slice it covers.
type SymbolUnit struct {
	Range     ByteRange
	Text      string
	Embedding *Embedding
}

// SemanticMatch is one ranked result of a semantic query.
type SemanticMatch struct {
	Similarity float32
	ByteRange  ByteRange
	Content    string
	FilePath   string
}
