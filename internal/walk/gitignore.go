package walk

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// gitignore is a minimal, read-once .gitignore matcher: one file's
// patterns, translated to doublestar globs. It does not implement the
// full git ignore-pattern grammar (negation edge cases, nested
// .gitignore precedence); see DESIGN.md for the scope this
// simplifies versus the teacher's internal/config/gitignore.go.
type gitignore struct {
	patterns []gitignorePattern
}

type gitignorePattern struct {
	glob   string
	negate bool
}

// loadGitignore reads rootDir/.gitignore, if present. A missing file
// yields an empty, harmless matcher.
func loadGitignore(rootDir string) *gitignore {
	gi := &gitignore{}

	f, err := os.Open(filepath.Join(rootDir, ".gitignore"))
	if err != nil {
		return gi
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		negate := strings.HasPrefix(line, "!")
		if negate {
			line = line[1:]
		}

		glob := toDoublestarGlob(line)
		gi.patterns = append(gi.patterns, gitignorePattern{glob: glob, negate: negate})
	}

	return gi
}

// toDoublestarGlob translates one gitignore line into a doublestar
// pattern: a trailing "/" is dropped, a pattern with no "/" (a bare
// name or a wildcard such as "*.log") matches at any depth, and a
// pattern containing "/" is left as-is for doublestar to interpret
// directly.
func toDoublestarGlob(pattern string) string {
	pattern = strings.TrimSuffix(pattern, "/")
	if strings.Contains(pattern, "/") {
		return pattern
	}
	return "**/" + pattern
}

// ignores reports whether relPath (slash-separated, relative to the
// gitignore's root) should be skipped: the last matching pattern
// wins, with "!"-prefixed patterns re-including a previously ignored
// path — standard gitignore precedence.
func (gi *gitignore) ignores(relPath string) bool {
	ignored := false
	for _, p := range gi.patterns {
		if ok, _ := doublestar.Match(p.glob, relPath); ok {
			ignored = !p.negate
		}
	}
	return ignored
}
