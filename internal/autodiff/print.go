package autodiff

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders v as a multi-line block:
//
//	Value {
//	 Data = 6
//	 Grad = 0
//	 Op   = MUL
//	 Prev = 2, 3
//	}
//
// Op and Prev are omitted for leaves. Prev lists the data of the distinct
// operands in construction order.
func (v *Value) String() string {
	var b strings.Builder
	b.WriteString("Value {\n")
	fmt.Fprintf(&b, " Data = %g\n", v.data)
	fmt.Fprintf(&b, " Grad = %g\n", v.grad)
	if v.op != OpNone {
		fmt.Fprintf(&b, " Op   = %s\n", v.op)
	}
	if prev := distinct(v.operands); len(prev) > 0 {
		data := make([]string, len(prev))
		for i, p := range prev {
			data[i] = fmt.Sprintf("%g", p.data)
		}
		fmt.Fprintf(&b, " Prev = %s\n", strings.Join(data, ", "))
	}
	b.WriteString("}")
	return b.String()
}

// Tree renders the graph reachable from root as an ASCII tree, root first.
//
// Each node is labelled "#id OP data (grad g)" where id is its position in
// TopologicalOrder(root). A node reachable along several paths is expanded
// the first time only; later occurrences print as "#id ^".
func Tree(root *Value) string {
	order := TopologicalOrder(root)
	ids := make(map[*Value]int, len(order))
	for i, n := range order {
		ids[n] = i
	}

	tree := treeprint.NewWithRoot(nodeLabel(root, ids[root]))
	expanded := map[*Value]bool{root: true}

	var grow func(parent treeprint.Tree, n *Value)
	grow = func(parent treeprint.Tree, n *Value) {
		for _, o := range n.operands {
			id := ids[o]
			switch {
			case expanded[o]:
				parent.AddNode(fmt.Sprintf("#%d ^", id))
			case o.IsLeaf():
				expanded[o] = true
				parent.AddNode(nodeLabel(o, id))
			default:
				expanded[o] = true
				grow(parent.AddBranch(nodeLabel(o, id)), o)
			}
		}
	}
	grow(tree, root)

	return tree.String()
}

func nodeLabel(v *Value, id int) string {
	switch v.op {
	case OpNone:
		return fmt.Sprintf("#%d %g (grad %g)", id, v.data, v.grad)
	case OpPow:
		return fmt.Sprintf("#%d POW^%g %g (grad %g)", id, v.exponent, v.data, v.grad)
	default:
		return fmt.Sprintf("#%d %s %g (grad %g)", id, v.op, v.data, v.grad)
	}
}

// distinct returns vs without repeated nodes, keeping first occurrences.
func distinct(vs []*Value) []*Value {
	if len(vs) < 2 {
		return vs
	}
	out := make([]*Value, 0, len(vs))
	for _, v := range vs {
		dup := false
		for _, seen := range out {
			if seen == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
