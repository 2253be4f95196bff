// Package embedding is the Embedding Engine (spec.md §4.E): it turns a
// symbol's text into a fixed-dimension, L2-normalized vector, either
// via ONNX inference over a sentence-transformer model or, when no
// model is available, a deterministic hash-based fallback so semantic
// search degrades gracefully instead of failing outright.
package embedding

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
	"github.com/tomwhiting/outgrep/internal/tokenizer"
)

// Dim is the embedding dimension used across outgrep: a 384-wide
// vector, matching the small sentence-transformer models named in
// the model registry (registry.go).
const Dim = 384

const maxSeqLen = 256

// Engine embeds symbol text into Dim-wide unit vectors. The zero value
// is not usable; construct with Load or NewFallback.
type Engine struct {
	session   *ort.DynamicAdvancedSession
	tokenizer *tokenizer.Tokenizer
	fallback  bool
}

// Load initializes an ONNX-backed Engine from modelDir, which must
// contain model.onnx and tokenizer.json. ortLibPath points at the
// onnxruntime shared library; pass "" to use the system default.
func Load(modelDir, ortLibPath string) (*Engine, error) {
	modelPath := filepath.Join(modelDir, "model.onnx")
	tokenPath := filepath.Join(modelDir, "tokenizer.json")

	if _, err := os.Stat(modelPath); err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: fmt.Sprintf("model not found at %s", modelPath), Underlying: err}
	}

	tk, err := tokenizer.Load(tokenPath)
	if err != nil {
		return nil, err
	}

	if ortLibPath != "" {
		ort.SetSharedLibraryPath(ortLibPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "initialize onnxruntime", Underlying: err}
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "session options", Underlying: err}
	}
	defer opts.Destroy()

	threads := runtime.NumCPU()
	if threads > 4 {
		threads = 4
	}
	_ = opts.SetIntraOpNumThreads(threads)
	_ = opts.SetInterOpNumThreads(1)

	inputNames := []string{"input_ids", "attention_mask", "token_type_ids"}
	outputNames := []string{"last_hidden_state"}

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, outputNames, opts)
	if err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "create onnx session", Underlying: err}
	}

	return &Engine{session: session, tokenizer: tk}, nil
}

// NewFallback builds an Engine that never touches ONNX: every call to
// Embed goes through the deterministic hash-based path (spec.md §4.E,
// "Model absent: degrade, don't fail").
func NewFallback() *Engine {
	return &Engine{fallback: true}
}

// Close releases the ONNX session, if any.
func (e *Engine) Close() {
	if e.session != nil {
		e.session.Destroy()
	}
}

// Embed produces one Dim-wide, L2-normalized vector for text. When the
// Engine has no ONNX session loaded, it transparently uses the
// deterministic fallback instead of failing.
func (e *Engine) Embed(text string) (model.Embedding, error) {
	if e.fallback || e.session == nil {
		return Fallback(text), nil
	}

	enc, err := e.tokenizer.Encode(text)
	if err != nil {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindTokenizeFailed, Message: "encode text", Underlying: err}
	}

	ids := enc.InputIDs
	if len(ids) > maxSeqLen {
		ids = ids[:maxSeqLen]
	}
	mask := enc.AttentionMask
	if len(mask) > maxSeqLen {
		mask = mask[:maxSeqLen]
	}
	seqLen := len(ids)

	ids64 := make([]int64, seqLen)
	mask64 := make([]int64, seqLen)
	type64 := make([]int64, seqLen)
	for i := range ids {
		ids64[i] = int64(ids[i])
		mask64[i] = int64(mask[i])
	}

	shape := ort.NewShape(1, int64(seqLen))
	idsT, err := ort.NewTensor(shape, ids64)
	if err != nil {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "input_ids tensor", Underlying: err}
	}
	defer idsT.Destroy()
	maskT, err := ort.NewTensor(shape, mask64)
	if err != nil {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "attention_mask tensor", Underlying: err}
	}
	defer maskT.Destroy()
	typeT, err := ort.NewTensor(shape, type64)
	if err != nil {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "token_type_ids tensor", Underlying: err}
	}
	defer typeT.Destroy()

	outputs := []ort.Value{nil}
	if err := e.session.Run([]ort.Value{idsT, maskT, typeT}, outputs); err != nil {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "onnx inference", Underlying: err}
	}
	defer func() {
		if outputs[0] != nil {
			outputs[0].Destroy()
		}
	}()

	hiddenTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return model.Embedding{}, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "unexpected onnx output type"}
	}

	hiddenShape := hiddenTensor.GetShape()
	hiddenDim := int(hiddenShape[len(hiddenShape)-1])

	vec := meanPool(hiddenTensor.GetData(), mask, seqLen, hiddenDim)
	l2Normalize(vec)
	vec = resize(vec, Dim)

	return model.Embedding{Vector: vec, Dim: Dim}, nil
}

// resize truncates or zero-pads v to exactly n elements (spec.md §4.E
// step 7: the embedding's dimensionality is a contract independent of
// whatever hidden size the underlying model happens to use).
func resize(v []float32, n int) []float32 {
	if len(v) == n {
		return v
	}
	out := make([]float32, n)
	copy(out, v)
	return out
}

// meanPool computes the attention-mask-weighted mean over the
// per-token hidden states, the standard sentence-transformer pooling
// strategy: tokens outside the real sequence (mask == 0) contribute
// nothing to the sentence vector.
func meanPool(hidden []float32, mask []uint32, seqLen, dim int) []float32 {
	sum := make([]float32, dim)
	var count float32
	for t := 0; t < seqLen; t++ {
		if mask[t] == 0 {
			continue
		}
		base := t * dim
		for d := 0; d < dim; d++ {
			sum[d] += hidden[base+d]
		}
		count++
	}
	if count == 0 {
		count = 1
	}
	for d := range sum {
		sum[d] /= count
	}
	return sum
}

// l2Normalize scales v in-place to unit length. Leaves v at zero if it
// is already (near) zero, since a zero vector has no direction to
// normalize to.
func l2Normalize(v []float32) {
	var sumSq float64
	for _, x := range v {
		sumSq += float64(x) * float64(x)
	}
	norm := math.Sqrt(sumSq)
	if norm < 1e-10 {
		return
	}
	inv := float32(1.0 / norm)
	for i := range v {
		v[i] *= inv
	}
}
