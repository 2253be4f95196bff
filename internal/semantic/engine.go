// Package semantic is the Query Engine (spec.md §4.Q): it joins the
// Symbol Sampler, Embedding Engine, and ANN Index into one per-file
// semantic search operation, returning the symbols whose embedded
// text is closest to a natural-language query under exact cosine
// similarity.
package semantic

import (
	"math"
	"sort"

	"github.com/tomwhiting/outgrep/internal/annindex"
	"github.com/tomwhiting/outgrep/internal/embedding"
	"github.com/tomwhiting/outgrep/internal/lang"
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/symbols"
	"github.com/tomwhiting/outgrep/internal/syntax"
)

// SearchFile runs the full semantic query procedure (spec.md §4.Q)
// against one file's bytes: parse, sample symbols, embed each, build
// an ANN index, embed the query, retrieve 2k approximate candidates,
// exact-cosine re-rank, and keep the top k above the similarity
// threshold. Returns (nil, false) when the file's language is
// unsupported or the file yields no symbols above τ.
func SearchFile(path string, source []byte, query string, eng *embedding.Engine, cfg Config, kinds map[model.ContextKind]bool) ([]model.SemanticMatch, bool) {
	id, ok := lang.LanguageOf(path)
	if !ok {
		return nil, false
	}

	tree, err := syntax.Parse(id, source)
	if err != nil {
		return nil, false
	}
	defer tree.Close()

	units := symbols.Sample(tree, kinds)
	if len(units) == 0 {
		return nil, false
	}

	vectors := make([][]float32, len(units))
	for i, u := range units {
		e, err := eng.Embed(u.Text)
		if err != nil {
			continue
		}
		vectors[i] = resize(e.Vector, cfg.Dim)
	}

	points := make([]annindex.Point, 0, len(units))
	for i, v := range vectors {
		if v == nil {
			continue
		}
		points = append(points, annindex.Point{Payload: i, Vector: v})
	}
	if len(points) == 0 {
		return nil, false
	}
	index := annindex.Build(points)

	qEmb, err := eng.Embed(query)
	if err != nil {
		return nil, false
	}
	qVec := resize(qEmb.Vector, cfg.Dim)

	k := cfg.MaxResults
	if k <= 0 {
		k = 10
	}
	candidates := index.Query(qVec, 2*k)

	type scored struct {
		unit model.SymbolUnit
		cos  float32
	}
	var ranked []scored
	for _, c := range candidates {
		if c.Payload < 0 || c.Payload >= len(units) {
			continue
		}
		cos := exactCosine(qVec, vectors[c.Payload])
		ranked = append(ranked, scored{unit: units[c.Payload], cos: cos})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].cos > ranked[j].cos })

	var out []model.SemanticMatch
	for _, r := range ranked {
		if len(out) >= k {
			break
		}
		if r.cos < cfg.SimilarityThreshold {
			continue
		}
		out = append(out, model.SemanticMatch{
			Similarity: r.cos,
			ByteRange:  r.unit.Range,
			Content:    r.unit.Text,
			FilePath:   path,
		})
	}

	return out, len(out) > 0
}

// resize truncates or zero-pads v to exactly n elements.
func resize(v []float32, n int) []float32 {
	if len(v) == n {
		return v
	}
	out := make([]float32, n)
	copy(out, v)
	return out
}

// exactCosine computes cosine similarity between a and b, clamped to
// [-1, 1] to absorb floating-point drift (spec.md §4.Q step 6).
func exactCosine(a, b []float32) float32 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return float32(cos)
}
