// Package context is the Context Resolver (spec.md §4.C): given a
// match range, it walks the CST to find the deepest enclosing node
// whose kind is in a configurable ContextKind set, and extracts that
// node's symbol name.
package context

import (
	"github.com/tomwhiting/outgrep/internal/model"
	"github.com/tomwhiting/outgrep/internal/ogerrors"
	"github.com/tomwhiting/outgrep/internal/syntax"
)

// Resolve finds the deepest enclosing context-kind node containing m,
// restricted to the kinds set in allowed (nil or empty falls back to
// model.DefaultContextKinds()). The algorithm is a depth-first descent
// from the tree's
// root: a node is only recursed into when its range fully contains m,
// and the (best_node, best_depth) pair is replaced only on a strictly
// greater depth — so the first node encountered at the maximum depth
// wins (spec.md's adopted tie-break; see SPEC_FULL.md Open Questions).
//
// Returns ogerrors.NoEnclosingSymbol when no node in allowed contains
// m, and ogerrors.InvalidOffset when m falls outside the tree's source.
func Resolve(t *syntax.Tree, m model.MatchRange, allowed map[model.ContextKind]bool) (model.ContextResult, error) {
	if int(m.End) > len(t.Source()) || m.Start >= m.End {
		return model.ContextResult{}, &ogerrors.InvalidOffset{Offset: int(m.Start)}
	}

	var best *syntax.Node
	bestDepth := -1
	var bestKind model.ContextKind

	root := t.Root()
	descend(root, 0, m, allowed, &best, &bestDepth, &bestKind)

	if best == nil {
		return model.ContextResult{}, &ogerrors.NoEnclosingSymbol{Start: m.Start, End: m.End}
	}

	return model.ContextResult{
		Range:      best.Range(),
		Kind:       bestKind,
		SymbolName: symbolName(best),
		Depth:      bestDepth,
	}, nil
}

func descend(
	n *syntax.Node,
	depth int,
	m model.MatchRange,
	allowed map[model.ContextKind]bool,
	best **syntax.Node,
	bestDepth *int,
	bestKind *model.ContextKind,
) {
	r := n.Range()
	if r.Start > m.Start || r.End < m.End {
		// Step 1: node does not contain the match — do not recurse.
		return
	}

	if !n.IsError() {
		if kind, ok := classify(n.Kind()); ok && kindAllowed(kind, allowed) {
			// Step 2: strictly greater depth required to replace, so the
			// first node encountered at a given depth keeps winning.
			if depth > *bestDepth {
				*best = n
				*bestDepth = depth
				*bestKind = kind
			}
		}
	}

	// Step 3: recurse into children at depth+1.
	for _, c := range n.Children() {
		descend(c, depth+1, m, allowed, best, bestDepth, bestKind)
	}
}

func kindAllowed(kind model.ContextKind, allowed map[model.ContextKind]bool) bool {
	if len(allowed) == 0 {
		return model.DefaultContextKinds()[kind]
	}
	return allowed[kind]
}

// symbolName scans n's direct children for the first one whose kind is
// in {identifier, name, type_identifier} and returns its text. Returns
// the empty string if none match (spec.md §4.C).
func symbolName(n *syntax.Node) string {
	for _, c := range n.Children() {
		if nameChildKinds[c.Kind()] {
			return c.Text()
		}
	}
	return ""
}
