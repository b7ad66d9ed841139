// Package nn implements a small feed-forward network on top of scalar autodiff.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Neuron: tanh(b + Σ wᵢxᵢ)
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: stacked layers
//   - Losses: SumSquaredError, MeanSquaredError
//
// Parameters are plain *autodiff.Value leaves. A forward pass builds a fresh
// graph on top of them each iteration; the caller resets their gradients
// before Backward and lets the previous graph become unreachable.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all network components.
//
// Modules can be composed:
//
//	mlp := nn.NewMLP([]int{3, 4, 4, 1}, rng)
//	out := mlp.Forward(nn.Inputs([]float64{2, 3, -1}))
type Module interface {
	// Parameters returns every trainable leaf of the module, in a stable
	// order (weights before bias, neurons and layers in construction order).
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradients of all parameters of m.
func ZeroGrad(m Module) {
	autodiff.ResetGradients(m.Parameters()...)
}

// Inputs lifts a row of raw numbers into leaves.
func Inputs(xs []float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.New(x)
	}
	return out
}
