package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomwhiting/outgrep/internal/embedding"
)

var downloadModelCmd = &cobra.Command{
	Use:   "download-model <name>",
	Short: "List or resolve a known embedding model name (no network access)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDownloadModel,
}

// TODO: wire an actual HTTP downloader once a model distribution host
// is chosen; the registry only resolves a name to the on-disk layout
// it expects (spec.md §6: "Model registry JSON (out of scope for the
// core; a plain lookup table)").
func runDownloadModel(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("known models:")
		for _, n := range embedding.Names() {
			fmt.Println("  " + n)
		}
		exitCode = 0
		return nil
	}

	info, ok := embedding.Lookup(args[0])
	if !ok {
		exitCode = 1
		return fmt.Errorf("unknown model %q; see `outgrep download-model` for the known list", args[0])
	}

	fmt.Printf("model %q resolves to onnx=%s tokenizer=%s dim=%d\n", args[0], info.OnnxPath, info.TokenizerPath, info.Dim)
	fmt.Println("download is not implemented: place the files under <model-dir>/ yourself and set semantic.model_dir in the .outgrep.kdl under --root")
	exitCode = 0
	return nil
}
