// Package optim implements optimization algorithms for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradient accumulated on each parameter leaf by
// autodiff.Backward and write the updated value back with SetData.
//
// Example usage:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    loss := nn.SumSquaredError(predict(mlp), targets)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad resets every parameter's gradient to 0.
	//
	// Call it before each backward pass; gradients otherwise accumulate.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad resets the gradients of params.
func zeroGrad(params []*autodiff.Value) {
	autodiff.ResetGradients(params...)
}
