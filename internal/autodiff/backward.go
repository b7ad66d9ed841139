package autodiff

import "math"

// Backward runs reverse-mode differentiation from root.
//
// Algorithm:
//  1. Seed root's gradient with 1 (d(root)/d(root) = 1)
//  2. Order every reachable node so operands come before their users
//  3. Walk that order in reverse and apply each node's local gradient rule
//
// Afterwards every reachable node holds d(root)/d(node), summed over all
// paths. Contributions are added to existing gradients, so a second call
// without ResetGraph accumulates on top of the first.
func Backward(root *Value) {
	root.grad = 1
	order := TopologicalOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// Backward is shorthand for Backward(v).
func (v *Value) Backward() {
	Backward(v)
}

// propagate distributes v's gradient to its operands according to v.op.
//
// Rules are applied once per operand edge: for x.Mul(x) both edges add to
// x, giving the expected 2x.
func (v *Value) propagate() {
	g := v.grad
	switch v.op {
	case OpNone:
		// Leaf, nothing to distribute.
	case OpAdd:
		// d(a+b)/da = 1, d(a+b)/db = 1
		for _, o := range v.operands {
			o.grad += g
		}
	case OpMul:
		// d(a*b)/da = b, d(a*b)/db = a
		a, b := v.operands[0], v.operands[1]
		a.grad += b.data * g
		b.grad += a.data * g
	case OpPow:
		// d(a^p)/da = p * a^(p-1)
		a := v.operands[0]
		a.grad += v.exponent * math.Pow(a.data, v.exponent-1) * g
	case OpTanh:
		// d(tanh(a))/da = 1 - tanh²(a)
		a := v.operands[0]
		a.grad += (1 - v.data*v.data) * g
	case OpExp:
		// d(e^a)/da = e^a
		a := v.operands[0]
		a.grad += v.data * g
	}
}
