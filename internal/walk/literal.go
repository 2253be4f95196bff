package walk

import "github.com/coregx/ahocorasick"

// LiteralPrefilter is an out-of-scope optimization (SPEC_FULL.md §B):
// when a search pattern's literal substrings are known up front, it
// lets a caller skip running the full regex engine over file content
// that cannot possibly contain a match. The content must already have
// been read.
type LiteralPrefilter struct {
	matcher *ahocorasick.Matcher
}

// NewLiteralPrefilter builds a prefilter over literals. An empty or
// nil input disables filtering: MayContain always reports true.
func NewLiteralPrefilter(literals []string) *LiteralPrefilter {
	if len(literals) == 0 {
		return &LiteralPrefilter{}
	}
	return &LiteralPrefilter{matcher: ahocorasick.NewStringMatcher(literals)}
}

// MayContain reports whether content could possibly contain a match:
// true if any registered literal appears, or if no prefilter is
// configured (a regex with no extractable literal prefix, e.g. "."
// alone, degrades to "always maybe").
func (f *LiteralPrefilter) MayContain(content []byte) bool {
	if f == nil || f.matcher == nil {
		return true
	}
	return len(f.matcher.Match(content)) > 0
}
