package embedding

// ModelInfo describes where one named embedding model's files live on
// disk and the dimension it produces. This is a plain lookup table,
// not a downloader: resolving a name to a path is in scope, fetching
// the files over HTTP is not (spec.md §1).
type ModelInfo struct {
	Name          string
	OnnxPath      string
	TokenizerPath string
	Dim           int
}

// registry is the static set of models outgrep knows the shape of.
// Paths are relative to a model directory supplied by the caller
// (semantic.model_dir in .outgrep.kdl); entries here only
// record the expected filenames and dimension.
var registry = map[string]ModelInfo{
	"all-MiniLM-L6-v2": {
		Name:          "all-MiniLM-L6-v2",
		OnnxPath:      "model.onnx",
		TokenizerPath: "tokenizer.json",
		Dim:           384,
	},
	"bge-small-en-v1.5": {
		Name:          "bge-small-en-v1.5",
		OnnxPath:      "model.onnx",
		TokenizerPath: "tokenizer.json",
		Dim:           384,
	},
}

// Lookup returns the registered ModelInfo for name, if any.
func Lookup(name string) (ModelInfo, bool) {
	info, ok := registry[name]
	return info, ok
}

// Names returns every registered model name, for CLI help text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
