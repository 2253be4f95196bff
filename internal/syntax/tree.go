// Package syntax is the Parser Facade (spec.md §4.P): it turns source
// bytes plus a language ID into a concrete syntax tree and exposes a
// uniform Node API (kind, byte range, children, DFS) over it.
//
// Node lifetimes are bounded by their Tree, and the Tree borrows from
// the source bytes it was built from (spec.md §9, "CST node
// lifetimes"). outgrep resolves this the idiomatic way: Tree is an
// owning arena holding both the tree-sitter tree and the source slice,
// and every Node method takes the source from the arena rather than
// from a caller-supplied slice, so a Node can never outlive its bytes
// by accident.
package syntax

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/tomwhiting/outgrep/internal/lang"
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
)

// Tree owns a parsed CST plus the source bytes it was parsed from.
// Call Close when done to release the underlying tree-sitter tree.
type Tree struct {
	tree     *tree_sitter.Tree
	source   []byte
	language lang.ID
}

// Parse parses source with the grammar for id. It fails with
// ParseFailed when the grammar returns an empty root range over
// non-empty input — a concrete sentinel for "the parser did not
// actually parse" (spec.md §4.P). Otherwise success is assumed even if
// the tree contains error nodes; those are traversable but never
// context-kind matching (see internal/context).
func Parse(id lang.ID, source []byte) (*Tree, error) {
	language, ok := lang.Language(id)
	if !ok {
		return nil, ogerrors.UnsupportedLanguage(string(id))
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(language); err != nil {
		return nil, &ogerrors.ParseFailed{Language: string(id), Reason: err.Error()}
	}

	tsTree := parser.Parse(source, nil)
	if tsTree == nil {
		return nil, &ogerrors.ParseFailed{Language: string(id), Reason: "parser returned no tree"}
	}

	root := tsTree.RootNode()
	if len(source) > 0 && root.EndByte() == root.StartByte() {
		tsTree.Close()
		return nil, &ogerrors.ParseFailed{Language: string(id), Reason: "empty root range over non-empty input"}
	}

	return &Tree{tree: tsTree, source: source, language: id}, nil
}

// Close releases the underlying tree-sitter tree. Safe to call once;
// callers must not use Nodes derived from this Tree afterward.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Language reports which grammar produced this tree.
func (t *Tree) Language() lang.ID { return t.language }

// Source returns the exact bytes this tree was parsed from.
func (t *Tree) Source() []byte { return t.source }

// Root returns the tree's root Node.
func (t *Tree) Root() *Node {
	return &Node{n: t.tree.RootNode(), source: t.source}
}

// Node wraps a tree-sitter node, bundled with the source bytes needed
// to resolve its text. Its lifetime is bounded by the Tree it came from.
type Node struct {
	n      *tree_sitter.Node
	source []byte
}

// Kind returns the grammar's node-kind string (e.g. "function_declaration").
func (n *Node) Kind() string { return n.n.Kind() }

// Range returns the node's byte range within the source.
func (n *Node) Range() model.ByteRange {
	return model.ByteRange{Start: n.n.StartByte(), End: n.n.EndByte()}
}

// Text returns the exact source slice the node covers.
func (n *Node) Text() string {
	r := n.Range()
	return string(n.source[r.Start:r.End])
}

// IsError reports whether this is a tree-sitter ERROR node or a node
// marked missing by error recovery. Error nodes are traversable but
// are never context-kind matching (spec.md §4.P).
func (n *Node) IsError() bool {
	return n.n.IsError() || n.n.IsMissing()
}

// ChildCount returns the number of direct children (named and anonymous).
func (n *Node) ChildCount() uint { return n.n.ChildCount() }

// Child returns the i-th direct child, or nil if i is out of range.
func (n *Node) Child(i uint) *Node {
	c := n.n.Child(i)
	if c == nil {
		return nil
	}
	return &Node{n: c, source: n.source}
}

// Children returns all direct children in depth-first (document) order.
func (n *Node) Children() []*Node {
	count := n.ChildCount()
	out := make([]*Node, 0, count)
	for i := uint(0); i < count; i++ {
		if c := n.Child(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Walk performs a depth-first, pre-order traversal of n and all of its
// descendants, invoking visit(node, depth) for each. depth 0 is n
// itself. visit's return value controls descent: returning false skips
// that node's children (but siblings are still visited).
func (n *Node) Walk(visit func(node *Node, depth int) bool) {
	n.walk(0, visit)
}

func (n *Node) walk(depth int, visit func(node *Node, depth int) bool) {
	if !visit(n, depth) {
		return
	}
	for _, c := range n.Children() {
		c.walk(depth+1, visit)
	}
}
