// Package lang is the Grammar Registry (spec.md §4.G): it maps a file
// extension to a LanguageID, and a LanguageID to a constructed
// tree-sitter grammar. Dispatch is a closed tagged enum plus a lookup
// table rather than open polymorphism, per the REDESIGN note in
// spec.md §9 ("Generic dispatch over 23 grammars").
package lang

import (
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	tree_sitter_css "github.com/tree-sitter-grammars/tree-sitter-css/bindings/go"
	tree_sitter_elixir "github.com/tree-sitter-grammars/tree-sitter-elixir/bindings/go"
	tree_sitter_haskell "github.com/tree-sitter-grammars/tree-sitter-haskell/bindings/go"
	tree_sitter_kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"
	tree_sitter_lua "github.com/tree-sitter-grammars/tree-sitter-lua/bindings/go"
	tree_sitter_scala "github.com/tree-sitter-grammars/tree-sitter-scala/bindings/go"
	tree_sitter_swift "github.com/tree-sitter-grammars/tree-sitter-swift/bindings/go"
	tree_sitter_yaml "github.com/tree-sitter-grammars/tree-sitter-yaml/bindings/go"
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ID is a closed enumeration of the languages outgrep understands.
// The observable set and their extension mapping is the Appendix
// contract in spec.md §9. Zig is carried as a bonus 24th grammar: the
// teacher already wires it as a "community parser" and nothing in the
// spec forbids recognizing more languages than the Appendix lists.
type ID string

const (
	Rust       ID = "Rust"
	JavaScript ID = "JavaScript"
	TypeScript ID = "TypeScript"
	Tsx        ID = "Tsx"
	Python     ID = "Python"
	Go         ID = "Go"
	Java       ID = "Java"
	C          ID = "C"
	Cpp        ID = "Cpp"
	CSharp     ID = "CSharp"
	Ruby       ID = "Ruby"
	Php        ID = "Php"
	Swift      ID = "Swift"
	Kotlin     ID = "Kotlin"
	Scala      ID = "Scala"
	Haskell    ID = "Haskell"
	Elixir     ID = "Elixir"
	Lua        ID = "Lua"
	Bash       ID = "Bash"
	Html       ID = "Html"
	Css        ID = "Css"
	Json       ID = "Json"
	Yaml       ID = "Yaml"
	Zig        ID = "Zig"
)

// extensionTable is the observable extension → LanguageID contract:
// the Appendix extensions, plus .h (C), .hpp (Cpp) and .zig (Zig).
var extensionTable = map[string]ID{
	".rs":    Rust,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".ts":    TypeScript,
	".tsx":   Tsx,
	".py":    Python,
	".go":    Go,
	".java":  Java,
	".c":     C,
	".h":     C,
	".cpp":   Cpp,
	".cc":    Cpp,
	".cxx":   Cpp,
	".hpp":   Cpp,
	".cs":    CSharp,
	".rb":    Ruby,
	".php":   Php,
	".swift": Swift,
	".kt":    Kotlin,
	".scala": Scala,
	".hs":    Haskell,
	".ex":    Elixir,
	".exs":   Elixir,
	".lua":   Lua,
	".sh":    Bash,
	".bash":  Bash,
	".zsh":   Bash,
	".html":  Html,
	".css":   Css,
	".json":  Json,
	".yml":   Yaml,
	".yaml":  Yaml,
	".zig":   Zig,
}

// LanguageOf returns the LanguageID for a file path's extension,
// lowercased, or false when the extension is not recognized. Callers
// treat a false result as "unsupported → skip" (spec.md §4.G).
func LanguageOf(path string) (ID, bool) {
	ext := strings.ToLower(extOf(path))
	id, ok := extensionTable[ext]
	return id, ok
}

func extOf(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	// Handle the common double extension case (.tar.gz) the same way
	// filepath.Ext does: only the final dot-segment matters.
	return path[idx:]
}

// constructors lazily build one *tree_sitter.Language per ID, shared
// across every parser instance (languages are immutable and safe to
// share once constructed; only tree_sitter.Parser instances are not).
var (
	constructorsOnce sync.Once
	constructors     map[ID]func() *tree_sitter.Language
	cacheMu          sync.Mutex
	cache            map[ID]*tree_sitter.Language
)

func initConstructors() {
	constructors = map[ID]func() *tree_sitter.Language{
		Rust:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_rust.Language()) },
		JavaScript: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_javascript.Language()) },
		TypeScript: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()) },
		Tsx:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()) },
		Python:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) },
		Go:         func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_go.Language()) },
		Java:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_java.Language()) },
		C:          func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_c.Language()) },
		Cpp:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_cpp.Language()) },
		CSharp:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_csharp.Language()) },
		Ruby:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_ruby.Language()) },
		Php:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()) },
		Swift:      func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_swift.Language()) },
		Kotlin:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_kotlin.Language()) },
		Scala:      func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_scala.Language()) },
		Haskell:    func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_haskell.Language()) },
		Elixir:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_elixir.Language()) },
		Lua:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_lua.Language()) },
		Bash:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_bash.Language()) },
		Html:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_html.Language()) },
		Css:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_css.Language()) },
		Json:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_json.Language()) },
		Yaml:       func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_yaml.Language()) },
		Zig:        func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_zig.Language()) },
	}
	cache = make(map[ID]*tree_sitter.Language, len(constructors))
}

// Language returns the shared *tree_sitter.Language for id, building it
// on first use. It returns false for an ID with no registered
// constructor (which should not happen for any ID returned by
// LanguageOf, but callers should still check).
func Language(id ID) (*tree_sitter.Language, bool) {
	constructorsOnce.Do(initConstructors)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if l, ok := cache[id]; ok {
		return l, true
	}
	ctor, ok := constructors[id]
	if !ok {
		return nil, false
	}
	l := ctor()
	cache[id] = l
	return l, true
}
