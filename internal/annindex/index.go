// Package annindex is the ANN Index (spec.md §4.I): a thin wrapper
// over an HNSW graph used purely for approximate candidate generation.
// Final ranking is always an exact cosine re-rank performed by the
// Query Engine (internal/semantic) over the candidates this package
// returns — spec.md is explicit that "the core relies on HNSW only
// for candidate generation, not for final ranking".
package annindex

import (
	"github.com/coder/hnsw"
)

// Candidate is one approximate nearest-neighbor result: the payload
// identifies which indexed point matched, paired with its approximate
// distance under the graph's configured metric.
type Candidate struct {
	Payload      int
	ApproxDistance float32
}

// Index is a build-once, query-many HNSW graph over payload/vector
// pairs. Payloads are caller-assigned ints (typically indices into a
// parallel slice of SymbolUnits), not interpreted by Index itself.
type Index struct {
	graph *hnsw.Graph[int]
}

// Build constructs an HNSW graph over points, using cosine distance —
// outgrep's embeddings are already L2-normalized, so cosine distance
// and Euclidean distance rank candidates identically, but cosine
// keeps the graph's notion of "close" aligned with the similarity
// metric the Query Engine re-ranks with.
func Build(points []Point) *Index {
	g := hnsw.NewGraph[int]()
	g.Distance = hnsw.CosineDistance

	nodes := make([]hnsw.Node[int], len(points))
	for i, p := range points {
		nodes[i] = hnsw.MakeNode(p.Payload, p.Vector)
	}
	g.Add(nodes...)

	return &Index{graph: g}
}

// Point is one (payload, vector) pair to be indexed.
type Point struct {
	Payload int
	Vector  []float32
}

// Query returns up to k approximate nearest neighbors of query, in
// ascending approximate distance. The Query Engine is expected to
// request at most 2k candidates from here before exact-cosine
// re-ranking (spec.md §4.I).
func (idx *Index) Query(query []float32, k int) []Candidate {
	if idx == nil || idx.graph == nil || k <= 0 {
		return nil
	}

	results := idx.graph.Search(query, k)
	out := make([]Candidate, len(results))
	for i, n := range results {
		out[i] = Candidate{Payload: n.Key, ApproxDistance: hnsw.CosineDistance(query, n.Value)}
	}
	return out
}

// Len reports how many points are indexed.
func (idx *Index) Len() int {
	if idx == nil || idx.graph == nil {
		return 0
	}
	return idx.graph.Len()
}
