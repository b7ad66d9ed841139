package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected row of neurons that all read the same inputs.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, rng) // 3 inputs, 4 outputs
//	out := layer.Forward(x)         // len(out) == 4
type Layer struct {
	nin     int
	neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{
		nin:     nin,
		neurons: neurons,
	}
}

// Forward applies every neuron to x.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.nin
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
