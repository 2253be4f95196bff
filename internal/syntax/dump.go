package syntax

import (
	"fmt"
	"io"
	"strings"
)

// DumpTree prints t's CST indented by depth, one node per line, in the
// style of "<kind> [start, end)". Supplemented from
// original_source/crates/core/diagnostics/tree.rs's recursive tree
// printer (spec.md §D.3) — useful for debugging the Context Resolver's
// depth bookkeeping without a debugger attached to cgo frames.
func DumpTree(w io.Writer, t *Tree) {
	t.Root().Walk(func(n *Node, depth int) bool {
		r := n.Range()
		fmt.Fprintf(w, "%s%s [%d, %d)\n", strings.Repeat("  ", depth), n.Kind(), r.Start, r.End)
		return true
	})
}
