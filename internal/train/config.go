// Package train drives an MLP through gradient descent on a small dataset.
//
// A run is described by a Config, typically loaded from YAML:
//
//	layers: [3, 4, 4, 1]
//	optimizer: sgd
//	learning_rate: 0.05
//	steps: 100
//	seed: 42
//	dataset:
//	  inputs:
//	    - [2, 3, -1]
//	    - [3, -1, 0.5]
//	  targets: [1, -1]
//
// Every step rebuilds the loss graph from the current parameters, resets the
// parameter gradients, runs Backward and applies one optimizer update.
package train

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Optimizer names accepted in Config.Optimizer.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config describes a training run.
type Config struct {
	Layers       []int   `yaml:"layers"`        // Layer sizes, input size first
	Optimizer    string  `yaml:"optimizer"`     // "sgd" or "adam"
	LearningRate float64 `yaml:"learning_rate"` // Step size
	Momentum     float64 `yaml:"momentum"`      // SGD momentum, [0, 1)
	Steps        int     `yaml:"steps"`         // Number of updates
	Seed         int64   `yaml:"seed"`          // Parameter initialization seed
	LogEvery     int     `yaml:"log_every"`     // Info-level loss log interval, 0 logs every step at debug only
	Dataset      Dataset `yaml:"dataset"`
}

// Dataset holds input rows and one scalar target per row.
type Dataset struct {
	Inputs  [][]float64 `yaml:"inputs"`
	Targets []float64   `yaml:"targets"`
}

// DefaultConfig returns the classic four-sample toy problem: a 3-4-4-1
// network trained for 20 plain SGD steps with learning rate 0.001.
func DefaultConfig() Config {
	return Config{
		Layers:       []int{3, 4, 4, 1},
		Optimizer:    OptimizerSGD,
		LearningRate: 0.001,
		Steps:        20,
		Seed:         42,
		LogEvery:     1,
		Dataset: Dataset{
			Inputs: [][]float64{
				{2, 3, -1},
				{3, -1, 0.5},
				{0.5, 0.5, 1},
				{1, 1, -1},
			},
			Targets: []float64{1, -1, -1, 1},
		},
	}
}

// LoadConfig reads a YAML config from path on top of DefaultConfig.
//
// Unknown keys are rejected. The result is validated.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes a YAML config from r on top of DefaultConfig and
// validates it. An empty document yields the defaults.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if len(c.Layers) < 2 {
		result = multierror.Append(result, fmt.Errorf("layers: need at least 2 sizes, got %d", len(c.Layers)))
	}
	for i, s := range c.Layers {
		if s <= 0 {
			result = multierror.Append(result, fmt.Errorf("layers[%d]: size must be positive, got %d", i, s))
		}
	}
	if n := len(c.Layers); n > 0 && c.Layers[n-1] != 1 {
		result = multierror.Append(result, fmt.Errorf("layers: output size must be 1, got %d", c.Layers[n-1]))
	}

	switch c.Optimizer {
	case OptimizerSGD, OptimizerAdam:
	default:
		result = multierror.Append(result, fmt.Errorf("optimizer: unknown optimizer %q", c.Optimizer))
	}
	if c.LearningRate <= 0 {
		result = multierror.Append(result, fmt.Errorf("learning_rate: must be positive, got %g", c.LearningRate))
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		result = multierror.Append(result, fmt.Errorf("momentum: must be in [0, 1), got %g", c.Momentum))
	}
	if c.Steps <= 0 {
		result = multierror.Append(result, fmt.Errorf("steps: must be positive, got %d", c.Steps))
	}
	if c.LogEvery < 0 {
		result = multierror.Append(result, fmt.Errorf("log_every: must not be negative, got %d", c.LogEvery))
	}

	if err := c.Dataset.validate(c.Layers); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (d Dataset) validate(layers []int) error {
	var result *multierror.Error

	if len(d.Inputs) == 0 {
		result = multierror.Append(result, errors.New("dataset.inputs: no samples"))
	}
	if len(d.Inputs) != len(d.Targets) {
		result = multierror.Append(result, fmt.Errorf("dataset: %d inputs but %d targets", len(d.Inputs), len(d.Targets)))
	}
	if len(layers) > 0 {
		for i, row := range d.Inputs {
			if len(row) != layers[0] {
				result = multierror.Append(result, fmt.Errorf("dataset.inputs[%d]: expected %d features, got %d", i, layers[0], len(row)))
			}
		}
	}

	return result.ErrorOrNil()
}
