// Package config loads outgrep's project-level settings from a
// hierarchical `.outgrep.kdl` file (spec.md's ambient config stack,
// SPEC_FULL.md §A.3), adapted from the teacher's KDL-based
// internal/config package.
package config

import "github.com/tomwhiting/outgrep/internal/model"

// Config is outgrep's resolved project configuration.
type Config struct {
	Project  Project
	Walk     Walk
	Semantic Semantic
}

// Project describes the root the rest of the config is relative to.
type Project struct {
	Root string
}

// Walk controls which files the directory walker visits.
type Walk struct {
	Include          []string
	Exclude          []string
	RespectGitignore bool
	MaxFileSizeBytes int64
}

// Semantic carries the Query Engine's default SemanticConfig plus
// where to find the embedding model and tokenizer on disk.
type Semantic struct {
	Dim                 int
	SimilarityThreshold float32
	MaxResults          int
	ModelDir            string
	ContextKinds        map[model.ContextKind]bool
}

// Default returns outgrep's built-in configuration, used whenever no
// `.outgrep.kdl` file is found.
func Default(projectRoot string) Config {
	return Config{
		Project: Project{Root: projectRoot},
		Walk: Walk{
			Include:          nil,
			Exclude:          defaultExclusions(),
			RespectGitignore: true,
			MaxFileSizeBytes: 10 * 1024 * 1024,
		},
		Semantic: Semantic{
			Dim:                 384,
			SimilarityThreshold: 0.2,
			MaxResults:          10,
			ContextKinds:        model.DefaultContextKinds(),
		},
	}
}

// defaultExclusions is a pared-down version of the teacher's build
// artifact and VCS exclusion list, grounded in
// internal/config/kdl_config.go's getDefaultExclusions: enough to keep
// a first run from indexing caches and dependency trees, not an
// exhaustive catalogue.
func defaultExclusions() []string {
	return []string{
		"**/.git/**",
		"**/node_modules/**",
		"**/vendor/**",
		"**/.cache/**",
		"**/dist/**",
		"**/build/**",
		"**/target/**",
		"**/__pycache__/**",
		"**/.venv/**",
		"**/*.min.js",
	}
}
