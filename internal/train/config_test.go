package train

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{3, 4, 4, 1}, cfg.Layers)
	assert.Equal(t, 20, cfg.Steps)
	assert.Equal(t, 0.001, cfg.LearningRate)
	assert.Len(t, cfg.Dataset.Inputs, 4)
	assert.Equal(t, []float64{1, -1, -1, 1}, cfg.Dataset.Targets)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/xor.yaml")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 1}, cfg.Layers)
	assert.Equal(t, OptimizerAdam, cfg.Optimizer)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, 300, cfg.Steps)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.LogEvery)
	assert.Equal(t, [][]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}, cfg.Dataset.Inputs)
	assert.Equal(t, []float64{-1, 1, 1, -1}, cfg.Dataset.Targets)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config")
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	_, err := LoadConfig("testdata/unknown_key.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning_rte")
}

func TestLoadConfig_ReportsAllProblems(t *testing.T) {
	_, err := LoadConfig("testdata/invalid.yaml")
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 7)

	msg := err.Error()
	for _, want := range []string{
		"layers[1]: size must be positive",
		"output size must be 1",
		`unknown optimizer "rmsprop"`,
		"learning_rate: must be positive",
		"steps: must be positive",
		"1 inputs but 2 targets",
		"dataset.inputs[0]: expected 3 features, got 2",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestParseConfig_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("steps: 5\nmomentum: 0.9\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Steps = 5
	want.Momentum = 0.9
	assert.Equal(t, want, cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"too few layers", func(c *Config) { c.Layers = []int{3} }, "need at least 2 sizes"},
		{"momentum out of range", func(c *Config) { c.Momentum = 1 }, "momentum: must be in [0, 1)"},
		{"negative log interval", func(c *Config) { c.LogEvery = -1 }, "log_every"},
		{"empty dataset", func(c *Config) {
			c.Dataset = Dataset{}
		}, "dataset.inputs: no samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
