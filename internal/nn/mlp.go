package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP chains layers so each layer's output is the next layer's input.
//
// Example:
//
//	mlp := nn.NewMLP([]int{3, 4, 4, 1}, nn.NewRand(42))
//
// builds three layers: 3→4, 4→4 and 4→1.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network from layer sizes, input size first.
//
// Panics if fewer than two sizes are given or any size is not positive.
func NewMLP(sizes []int, rng *rand.Rand) *MLP {
	if len(sizes) < 2 {
		panic(fmt.Sprintf("MLP: need at least input and output sizes, got %v", sizes))
	}
	for _, s := range sizes {
		if s <= 0 {
			panic(fmt.Sprintf("MLP: layer sizes must be positive, got %v", sizes))
		}
	}

	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{layers: layers}
}

// Forward runs x through every layer.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := x
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Parameters returns all trainable parameters from all layers.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets every parameter's gradient.
func (m *MLP) ZeroGrad() {
	ZeroGrad(m)
}
