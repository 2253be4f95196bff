package embedding

import (
	"github.com/cespare/xxhash/v2"

	"github.com/tomwhiting/outgrep/internal/model"
)

// lcgMultiplier and lcgIncrement are the classic Numerical-Recipes LCG
// constants, used here only to deterministically expand one 64-bit
// hash into Dim pseudo-random floats — not for anything
// security-sensitive.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// Fallback produces a deterministic, L2-normalized Dim-wide vector
// from text's content hash. It carries no semantic meaning: two
// unrelated symbols with similar hashes are not "similar", but it
// lets semantic search run (identically and reproducibly) when no
// ONNX model is installed, rather than failing outright (spec.md
// §4.E, "Model absent: degrade, don't fail").
func Fallback(text string) model.Embedding {
	h := xxhash.Sum64String(text)

	vec := make([]float32, Dim)
	for i := 0; i < Dim; i++ {
		h = h*lcgMultiplier + lcgIncrement
		vec[i] = float32(h) / float32(^uint64(0))
	}

	l2Normalize(vec)
	return model.Embedding{Vector: vec, Dim: Dim}
}
