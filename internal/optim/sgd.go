package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if s.momentum != 0 {
		s.velocities = make([]float64, len(params))
	}
	return s
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for i, p := range s.params {
		g := p.Grad()
		if s.momentum != 0 {
			s.velocities[i] = s.momentum*s.velocities[i] + g
			g = s.velocities[i]
		}
		p.SetData(p.Data() - s.lr*g)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
