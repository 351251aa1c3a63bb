package ax

import "github.com/deskpilot/deskpilot/internal/platform"

// VisitFunc is invoked once per distinct element in breadth-first order.
// depth is the distance from the walk root. Returning false stops the walk
// immediately.
type VisitFunc func(el platform.Element, depth int) bool

// Walk traverses the accessibility tree rooted at root in breadth-first
// order. The tree is externally owned and not guaranteed to be a DAG: an
// element can list itself as its own child or appear under multiple
// parents. Every walk therefore keeps a visited set keyed by the platform
// identity hash. An already-visited element is skipped without invoking
// visit and without expanding its children.
//
// maxDepth bounds expansion: children of elements at depth == maxDepth are
// not enqueued. A negative maxDepth means unbounded.
func Walk(acc platform.Accessor, root platform.Element, maxDepth int, visit VisitFunc) {
	if root == nil {
		return
	}

	type item struct {
		el    platform.Element
		depth int
	}

	queue := []item{{el: root, depth: 0}}
	visited := make(map[uint64]bool)

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		h := it.el.Hash()
		if visited[h] {
			continue
		}
		visited[h] = true

		if !visit(it.el, it.depth) {
			return
		}

		if maxDepth >= 0 && it.depth >= maxDepth {
			continue
		}
		for _, child := range acc.Children(it.el) {
			if child == nil {
				continue
			}
			queue = append(queue, item{el: child, depth: it.depth + 1})
		}
	}
}
