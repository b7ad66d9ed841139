package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(b + Σ wᵢxᵢ).
//
// Weights and bias are initialized from U[-1, 1).
type Neuron struct {
	w []*autodiff.Value
	b *autodiff.Value
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	w := make([]*autodiff.Value, nin)
	for i := range w {
		w[i] = Uniform(rng, -1, 1)
	}
	return &Neuron{
		w: w,
		b: Uniform(rng, -1, 1),
	}
}

// Forward builds the neuron's output node for inputs x.
//
// Panics if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.w), len(x)))
	}

	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}
	return act.Tanh()
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.w
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.b
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}
