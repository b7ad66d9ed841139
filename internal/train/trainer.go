package train

import (
	"context"
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// Trainer owns a model, its optimizer and the dataset lifted into leaves.
type Trainer struct {
	cfg     Config
	model   *nn.MLP
	opt     optim.Optimizer
	inputs  [][]*autodiff.Value
	targets []*autodiff.Value
	logger  hclog.Logger
}

// Result summarizes a finished run.
type Result struct {
	Losses      []float64 // Loss before each update, one per step
	FinalLoss   float64   // Loss after the last update
	Predictions []float64 // Model output per sample after the last update
}

// New validates cfg and builds the model and optimizer.
//
// A nil logger discards all output.
func New(cfg Config, logger hclog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	model := nn.NewMLP(cfg.Layers, nn.NewRand(cfg.Seed))

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case OptimizerAdam:
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LearningRate})
	default:
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{
			LR:       cfg.LearningRate,
			Momentum: cfg.Momentum,
		})
	}

	inputs := make([][]*autodiff.Value, len(cfg.Dataset.Inputs))
	for i, row := range cfg.Dataset.Inputs {
		inputs[i] = nn.Inputs(row)
	}

	return &Trainer{
		cfg:     cfg,
		model:   model,
		opt:     opt,
		inputs:  inputs,
		targets: nn.Inputs(cfg.Dataset.Targets),
		logger:  logger,
	}, nil
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Loss builds the sum-of-squared-errors graph over the whole dataset from
// the current parameters.
func (t *Trainer) Loss() *autodiff.Value {
	preds := make([]*autodiff.Value, len(t.inputs))
	for i, x := range t.inputs {
		preds[i] = t.model.Forward(x)[0]
	}
	return nn.SumSquaredError(preds, t.targets)
}

// Step performs one update and returns the loss measured before it.
func (t *Trainer) Step() float64 {
	loss := t.Loss()

	t.opt.ZeroGrad()
	loss.Backward()
	t.opt.Step()

	return loss.Data()
}

// Run performs cfg.Steps updates. It stops early with ctx's error if ctx is
// cancelled between steps.
//
// A non-finite loss is logged as a warning and training continues: NaN and
// Inf propagate through the graph like any other value.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	t.logger.Info("training started",
		"layers", fmt.Sprint(t.cfg.Layers),
		"parameters", len(t.model.Parameters()),
		"optimizer", t.cfg.Optimizer,
		"learning_rate", t.cfg.LearningRate,
		"steps", t.cfg.Steps,
		"seed", t.cfg.Seed,
	)

	losses := make([]float64, 0, t.cfg.Steps)
	for step := 0; step < t.cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training interrupted at step %d: %w", step, err)
		}

		loss := t.Step()
		losses = append(losses, loss)

		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			t.logger.Warn("non-finite loss", "step", step, "loss", loss)
		}
		if t.cfg.LogEvery > 0 && step%t.cfg.LogEvery == 0 {
			t.logger.Info("step", "step", step, "loss", loss)
		} else {
			t.logger.Debug("step", "step", step, "loss", loss)
		}
	}

	result := &Result{
		Losses:      losses,
		FinalLoss:   t.Loss().Data(),
		Predictions: make([]float64, len(t.cfg.Dataset.Inputs)),
	}
	for i, row := range t.cfg.Dataset.Inputs {
		result.Predictions[i] = t.Predict(row)
	}

	t.logger.Info("training finished", "final_loss", result.FinalLoss)
	return result, nil
}

// Predict returns the model output for a raw input row.
//
// Panics if len(x) does not match the input size.
func (t *Trainer) Predict(x []float64) float64 {
	return t.model.Forward(nn.Inputs(x))[0].Data()
}
