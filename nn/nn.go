// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward network built on scalar autodiff.
//
// # Basic Usage
//
//	rng := nn.NewRand(42)
//	mlp := nn.NewMLP([]int{3, 4, 4, 1}, rng)
//
//	out := mlp.Forward(nn.Inputs([]float64{2, 3, -1}))
//	loss := nn.SumSquaredError(out, nn.Inputs([]float64{1}))
//
//	mlp.ZeroGrad()
//	loss.Backward()
package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is implemented by every component that owns parameters.
type Module = nn.Module

// Neuron computes tanh(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, rng)
}

// Layer is a row of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, rng)
}

// MLP is a stack of layers.
type MLP = nn.MLP

// NewMLP creates a network from layer sizes, input size first.
//
// Example:
//
//	mlp := nn.NewMLP([]int{3, 4, 4, 1}, nn.NewRand(42))
func NewMLP(sizes []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(sizes, rng)
}

// NewRand returns a deterministic generator for parameter initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Uniform returns a parameter leaf drawn from U[lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) *autodiff.Value {
	return nn.Uniform(rng, lo, hi)
}

// Inputs lifts a row of raw numbers into leaves.
func Inputs(xs []float64) []*autodiff.Value {
	return nn.Inputs(xs)
}

// ZeroGrad resets the gradients of all parameters of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// SumSquaredError returns Σ (targetᵢ - predᵢ)².
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.SumSquaredError(predictions, targets)
}

// MeanSquaredError returns Σ (targetᵢ - predᵢ)² / n.
func MeanSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.MeanSquaredError(predictions, targets)
}
