// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic operation on a Value allocates a new Value that remembers
// which operation produced it and which operands it consumed. The resulting
// computation graph is a DAG that only grows: nothing but the gradient
// accumulator of a node is ever mutated after construction.
//
// Architecture:
//   - Value: graph node holding data, gradient accumulator, op tag and operands
//   - Op: tag selecting the local gradient rule applied during backward
//   - TopologicalOrder: depth-first post-order over the reachable graph
//   - Backward: seeds the root and applies each node's rule in reverse order
//
// Usage:
//
//	x := autodiff.New(2.0)
//	y := x.Mul(x).Add(x) // y = x² + x
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 5
//
// Gradients accumulate across backward passes. Callers reset them explicitly
// with ResetGradients (or ResetGraph) before reusing the same nodes.
package autodiff

// Value is a scalar node of the computation graph.
//
// A Value is created exactly once, by New or by an operation on other
// Values. Its data and operands never change afterwards (SetData exists for
// optimizer updates of parameter leaves), only its gradient does.
type Value struct {
	data     float64  // Forward result
	grad     float64  // d(root)/d(this), valid after a backward pass reaches this node
	op       Op       // Producing operation, OpNone for leaves
	operands []*Value // Operand edges in construction order, may repeat a node
	exponent float64  // Constant exponent of OpPow
}

// New lifts a raw number into the graph as a leaf with zero gradient.
func New(data float64) *Value {
	return &Value{data: data}
}

// newNode creates a derived node. Operands must already exist, which is what
// keeps the graph acyclic.
func newNode(data float64, op Op, operands ...*Value) *Value {
	return &Value{
		data:     data,
		op:       op,
		operands: operands,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Intended for parameter leaves updated by an optimizer between iterations.
// Derived nodes computed from the old value are not recomputed.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation that produced v, or OpNone for a leaf.
func (v *Value) Op() Op {
	return v.op
}

// IsLeaf reports whether v was created directly from a raw number.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// Operands returns a copy of the operand edges of v.
//
// An operand used twice (x.Mul(x)) is listed twice.
func (v *Value) Operands() []*Value {
	if len(v.operands) == 0 {
		return nil
	}
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// Exponent returns the constant exponent of an OpPow node and 0 otherwise.
func (v *Value) Exponent() float64 {
	return v.exponent
}
