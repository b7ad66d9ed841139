package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

func TestUniform_Range(t *testing.T) {
	rng := nn.NewRand(1)
	for i := 0; i < 1000; i++ {
		v := nn.Uniform(rng, -1, 1)
		assert.GreaterOrEqual(t, v.Data(), -1.0)
		assert.Less(t, v.Data(), 1.0)
		assert.True(t, v.IsLeaf())
	}
}

func TestNeuron_Forward(t *testing.T) {
	n := nn.NewNeuron(3, nn.NewRand(7))
	require.Len(t, n.Weights(), 3)

	x := nn.Inputs([]float64{2, 3, -1})
	out := n.Forward(x)

	want := n.Bias().Data()
	for i, w := range n.Weights() {
		want += w.Data() * x[i].Data()
	}
	assert.InDelta(t, math.Tanh(want), out.Data(), 1e-12)
	assert.Equal(t, autodiff.OpTanh, out.Op())
}

func TestNeuron_Parameters(t *testing.T) {
	n := nn.NewNeuron(2, nn.NewRand(3))
	params := n.Parameters()

	require.Len(t, params, 3)
	assert.Same(t, n.Weights()[0], params[0])
	assert.Same(t, n.Weights()[1], params[1])
	assert.Same(t, n.Bias(), params[2])
}

func TestNeuron_InputMismatchPanics(t *testing.T) {
	n := nn.NewNeuron(3, nn.NewRand(1))
	assert.PanicsWithValue(t, "Neuron: expected 3 inputs, got 2", func() {
		n.Forward(nn.Inputs([]float64{1, 2}))
	})
}

func TestLayer(t *testing.T) {
	l := nn.NewLayer(3, 4, nn.NewRand(11))

	assert.Equal(t, 3, l.InFeatures())
	assert.Equal(t, 4, l.OutFeatures())
	assert.Len(t, l.Parameters(), 4*(3+1))

	out := l.Forward(nn.Inputs([]float64{0.5, -0.5, 1}))
	assert.Len(t, out, 4)
}

func TestMLP_Shape(t *testing.T) {
	mlp := nn.NewMLP([]int{3, 4, 4, 1}, nn.NewRand(42))

	require.Len(t, mlp.Layers(), 3)
	assert.Len(t, mlp.Parameters(), 4*(3+1)+4*(4+1)+1*(4+1))

	out := mlp.Forward(nn.Inputs([]float64{2, 3, -1}))
	require.Len(t, out, 1)
	assert.Greater(t, out[0].Data(), -1.0)
	assert.Less(t, out[0].Data(), 1.0)
}

func TestMLP_SeedIsDeterministic(t *testing.T) {
	a := nn.NewMLP([]int{2, 3, 1}, nn.NewRand(5))
	b := nn.NewMLP([]int{2, 3, 1}, nn.NewRand(5))
	c := nn.NewMLP([]int{2, 3, 1}, nn.NewRand(6))

	pa, pb, pc := a.Parameters(), b.Parameters(), c.Parameters()
	require.Len(t, pb, len(pa))

	same := true
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
		if pa[i].Data() != pc[i].Data() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should give different weights")
}

func TestMLP_InvalidSizesPanic(t *testing.T) {
	assert.Panics(t, func() { nn.NewMLP([]int{3}, nn.NewRand(1)) })
	assert.Panics(t, func() { nn.NewMLP([]int{3, 0, 1}, nn.NewRand(1)) })
}

func TestMLP_GradientMatchesFiniteDifference(t *testing.T) {
	const eps = 1e-5

	mlp := nn.NewMLP([]int{2, 3, 1}, nn.NewRand(9))
	x := []float64{0.7, -0.2}
	y := []*autodiff.Value{autodiff.New(0.5)}

	loss := func() *autodiff.Value {
		return nn.SumSquaredError(mlp.Forward(nn.Inputs(x)), y)
	}

	mlp.ZeroGrad()
	loss().Backward()

	for i, p := range mlp.Parameters() {
		orig := p.Data()

		p.SetData(orig + eps)
		plus := loss().Data()
		p.SetData(orig - eps)
		minus := loss().Data()
		p.SetData(orig)

		want := (plus - minus) / (2 * eps)
		assert.InDeltaf(t, want, p.Grad(), 1e-4, "parameter %d", i)
	}
}

func TestMLP_ZeroGrad(t *testing.T) {
	mlp := nn.NewMLP([]int{2, 2, 1}, nn.NewRand(2))
	out := mlp.Forward(nn.Inputs([]float64{1, -1}))
	out[0].Backward()

	nonZero := 0
	for _, p := range mlp.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	require.Positive(t, nonZero)

	mlp.ZeroGrad()
	for _, p := range mlp.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

func TestSumSquaredError(t *testing.T) {
	preds := nn.Inputs([]float64{0.5, -0.5})
	targets := nn.Inputs([]float64{1, -1})

	loss := nn.SumSquaredError(preds, targets)
	assert.InDelta(t, 0.5, loss.Data(), 1e-12)

	loss.Backward()
	// d/dp (t - p)² = -2(t - p)
	assert.InDelta(t, -1.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 1.0, preds[1].Grad(), 1e-12)
}

func TestMeanSquaredError(t *testing.T) {
	preds := nn.Inputs([]float64{0, 0, 0, 0})
	targets := nn.Inputs([]float64{1, -1, 2, -2})

	loss := nn.MeanSquaredError(preds, targets)
	assert.InDelta(t, 2.5, loss.Data(), 1e-12)
}

func TestLoss_MismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		nn.SumSquaredError(nn.Inputs([]float64{1}), nn.Inputs([]float64{1, 2}))
	})
	assert.Panics(t, func() {
		nn.MeanSquaredError(nil, nil)
	})
}
