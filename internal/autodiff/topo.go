package autodiff

// TopologicalOrder returns every node reachable from root, each exactly once,
// with every node placed after all of its operands. root is always last.
//
// The walk is a depth-first post-order that visits operands in construction
// order, so the result is deterministic for a given graph. A fresh visited
// set is used on every call; nothing is cached between calls.
func TopologicalOrder(root *Value) []*Value {
	order := make([]*Value, 0, 16)
	visited := make(map[*Value]struct{})

	var visit func(*Value)
	visit = func(n *Value) {
		if _, seen := visited[n]; seen {
			return
		}
		visited[n] = struct{}{}
		for _, o := range n.operands {
			visit(o)
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
