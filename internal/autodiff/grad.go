package autodiff

// ZeroGrad sets v's gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// ResetGradient sets the gradient of a single node to 0.
func ResetGradient(v *Value) {
	v.ZeroGrad()
}

// ResetGradients sets the gradient of every given node to 0.
//
// This is the per-iteration reset for parameter leaves: call it before each
// Backward so gradients from the previous iteration do not accumulate.
func ResetGradients(vs ...*Value) {
	for _, v := range vs {
		v.grad = 0
	}
}

// ResetGraph sets the gradient of every node reachable from root to 0,
// including intermediate nodes. Use it before running Backward again on a
// graph that was already differentiated.
func ResetGraph(root *Value) {
	ResetGradients(TopologicalOrder(root)...)
}
