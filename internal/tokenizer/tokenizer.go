// Package tokenizer is the Tokenizer component (spec.md §4.T): a
// WordPiece tokenizer loaded from a JSON vocabulary description,
// producing input-ids and an attention-mask for the Embedding Engine.
// Token-type-ids are always zero for outgrep's single-segment encoding.
package tokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/tomwhiting/outgrep/internal/ogerrors"
)

// jsonDescription is the on-disk schema a tokenizer JSON file must
// satisfy. It intentionally mirrors the shape of the widely used
// HuggingFace `tokenizer.json` "model" section closely enough that a
// real WordPiece vocabulary file can be pointed at it directly, while
// staying opaque to callers per spec.md §6 ("Tokenizer JSON: opaque").
type jsonDescription struct {
	Model struct {
		Type     string           `json:"type"`
		UnkToken string           `json:"unk_token"`
		Vocab    map[string]uint32 `json:"vocab"`
	} `json:"model"`
	SpecialTokens struct {
		CLS string `json:"cls"`
		SEP string `json:"sep"`
		PAD string `json:"pad"`
	} `json:"special_tokens"`
	MaxInputCharsPerWord int `json:"max_input_chars_per_word"`
	ModelMaxLength       int `json:"model_max_length"`
}

// Tokenizer is an immutable, loaded WordPiece vocabulary.
type Tokenizer struct {
	vocab                map[string]uint32
	unkToken             string
	unkID                uint32
	clsID, sepID, padID  uint32
	maxInputCharsPerWord int
	maxLen               int
}

const (
	defaultMaxInputCharsPerWord = 100
	defaultMaxLen               = 256
)

// Load reads a tokenizer JSON description from path.
func Load(path string) (*Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "read tokenizer file", Underlying: err}
	}

	var desc jsonDescription
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "parse tokenizer json", Underlying: err}
	}
	if len(desc.Model.Vocab) == 0 {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: "tokenizer vocab is empty"}
	}

	unk := desc.Model.UnkToken
	if unk == "" {
		unk = "[UNK]"
	}
	unkID, ok := desc.Model.Vocab[unk]
	if !ok {
		return nil, &ogerrors.Error{Kind: ogerrors.KindModelLoadFailed, Message: fmt.Sprintf("unk token %q missing from vocab", unk)}
	}

	maxChars := desc.MaxInputCharsPerWord
	if maxChars <= 0 {
		maxChars = defaultMaxInputCharsPerWord
	}
	maxLen := desc.ModelMaxLength
	if maxLen <= 0 {
		maxLen = defaultMaxLen
	}

	cls := desc.SpecialTokens.CLS
	if cls == "" {
		cls = "[CLS]"
	}
	sep := desc.SpecialTokens.SEP
	if sep == "" {
		sep = "[SEP]"
	}
	pad := desc.SpecialTokens.PAD
	if pad == "" {
		pad = "[PAD]"
	}

	return &Tokenizer{
		vocab:                desc.Model.Vocab,
		unkToken:             unk,
		unkID:                unkID,
		clsID:                desc.Model.Vocab[cls],
		sepID:                desc.Model.Vocab[sep],
		padID:                desc.Model.Vocab[pad],
		maxInputCharsPerWord: maxChars,
		maxLen:               maxLen,
	}, nil
}

// Encoding is the tokenizer's output for one input text.
type Encoding struct {
	InputIDs      []uint32
	AttentionMask []uint32
	TokenTypeIDs  []uint32 // always zero-filled: single-segment encoding
}

// Encode tokenizes text into WordPiece subwords bracketed by [CLS]/[SEP],
// truncated to the tokenizer's configured maximum length. Callers must
// tolerate any resulting length L (spec.md §4.T).
func (t *Tokenizer) Encode(text string) (Encoding, error) {
	words := splitWords(text)

	ids := make([]uint32, 0, len(words)+2)
	ids = append(ids, t.clsID)
	for _, w := range words {
		ids = append(ids, t.wordPiece(w)...)
		if len(ids) >= t.maxLen-1 {
			break
		}
	}
	if len(ids) > t.maxLen-1 {
		ids = ids[:t.maxLen-1]
	}
	ids = append(ids, t.sepID)

	mask := make([]uint32, len(ids))
	for i := range mask {
		mask[i] = 1
	}

	return Encoding{
		InputIDs:      ids,
		AttentionMask: mask,
		TokenTypeIDs:  make([]uint32, len(ids)),
	}, nil
}

// wordPiece greedily matches the longest vocabulary entry starting at
// each position, prefixing continuation pieces with "##", the
// standard BERT WordPiece convention. Falls back to the unk token for
// words exceeding maxInputCharsPerWord or with no valid split.
func (t *Tokenizer) wordPiece(word string) []uint32 {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) > t.maxInputCharsPerWord {
		return []uint32{t.unkID}
	}

	var out []uint32
	start := 0
	for start < len(runes) {
		end := len(runes)
		var matched uint32
		found := false
		for end > start {
			piece := string(runes[start:end])
			if start > 0 {
				piece = "##" + piece
			}
			if id, ok := t.vocab[piece]; ok {
				matched = id
				found = true
				break
			}
			end--
		}
		if !found {
			return []uint32{t.unkID}
		}
		out = append(out, matched)
		start = end
	}
	return out
}

// splitWords performs basic whitespace/punctuation pre-tokenization,
// the step WordPiece runs on top of.
func splitWords(text string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			words = append(words, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}
