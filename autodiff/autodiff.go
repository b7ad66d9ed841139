// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Every operation on a Value records its operands, building a computation
// graph. Backward walks that graph in reverse topological order and leaves
// d(root)/d(node) in every reachable node.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(2)
//	    b := autodiff.New(3)
//	    y := a.Mul(b).Add(a) // y = ab + a
//
//	    y.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 4 2
//	}
//
// Gradients accumulate. Reset them with ResetGradients or ResetGraph before
// running Backward again over the same nodes.
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a scalar node of the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operations.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpTanh = autodiff.OpTanh
	OpExp  = autodiff.OpExp
	OpPow  = autodiff.OpPow
)

// New lifts a raw number into the graph as a leaf.
func New(data float64) *Value {
	return autodiff.New(data)
}

// Sum returns the sum of vs.
func Sum(vs ...*Value) *Value {
	return autodiff.Sum(vs...)
}

// Backward computes d(root)/d(node) for every node reachable from root.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ResetGradient sets the gradient of v to 0.
func ResetGradient(v *Value) {
	autodiff.ResetGradient(v)
}

// ResetGradients sets the gradient of every given node to 0.
func ResetGradients(vs ...*Value) {
	autodiff.ResetGradients(vs...)
}

// ResetGraph sets the gradient of every node reachable from root to 0.
func ResetGraph(root *Value) {
	autodiff.ResetGraph(root)
}

// Tree renders the graph reachable from root as an ASCII tree.
func Tree(root *Value) string {
	return autodiff.Tree(root)
}
