package config

import (
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
)

// Load reads `.outgrep.kdl` from projectRoot if present, merging its
// values over Default(projectRoot). A missing file is not an error:
// callers get the defaults (spec.md's ambient config stack degrades
// gracefully, mirroring the teacher's LoadKDL).
func Load(projectRoot string) (Config, error) {
	cfg := Default(projectRoot)

	path := filepath.Join(projectRoot, ".outgrep.kdl")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &ogerrors.Error{Kind: ogerrors.KindIO, Message: "read .outgrep.kdl", Underlying: err}
	}

	doc, err := kdl.Parse(strings.NewReader(string(data)))
	if err != nil {
		return cfg, &ogerrors.Error{Kind: ogerrors.KindConfig, Message: "parse .outgrep.kdl", Underlying: err}
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				if nodeName(cn) == "root" {
					if s, ok := firstStringArg(cn); ok {
						cfg.Project.Root = resolveRoot(projectRoot, s)
					}
				}
			}
		case "include":
			cfg.Walk.Include = collectStringArgs(n)
		case "exclude":
			cfg.Walk.Exclude = collectStringArgs(n)
		case "walk":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "respect_gitignore":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Walk.RespectGitignore = b
					}
				case "max_file_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Walk.MaxFileSizeBytes = int64(v)
					}
				}
			}
		case "semantic":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "dim":
					if v, ok := firstIntArg(cn); ok {
						cfg.Semantic.Dim = v
					}
				case "similarity_threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Semantic.SimilarityThreshold = float32(v)
					}
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Semantic.MaxResults = v
					}
				case "model_dir":
					if s, ok := firstStringArg(cn); ok {
						cfg.Semantic.ModelDir = s
					}
				case "context_kinds":
					kinds := collectStringArgs(cn)
					if len(kinds) > 0 {
						cfg.Semantic.ContextKinds = toContextKinds(kinds)
					}
				}
			}
		}
	}

	return cfg, nil
}

func toContextKinds(names []string) map[model.ContextKind]bool {
	out := make(map[model.ContextKind]bool, len(names))
	for _, n := range names {
		out[model.ContextKind(n)] = true
	}
	return out
}

func resolveRoot(projectRoot, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(projectRoot, configured))
}

// nodeName, firstIntArg, firstStringArg, firstBoolArg, firstFloatArg,
// and collectStringArgs mirror the teacher's kdl_config.go helpers for
// walking the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	s, ok := n.Arguments[0].Value.(string)
	return s, ok
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	b, ok := n.Arguments[0].Value.(bool)
	return b, ok
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
