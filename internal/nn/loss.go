package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SumSquaredError returns Σ (targetᵢ - predᵢ)².
//
// Panics if predictions and targets differ in length or are empty.
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLoss("SumSquaredError", predictions, targets)

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = targets[i].Sub(p).Pow(2)
	}
	return autodiff.Sum(terms...)
}

// MeanSquaredError returns Σ (targetᵢ - predᵢ)² / n.
func MeanSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLoss("MeanSquaredError", predictions, targets)
	return SumSquaredError(predictions, targets).DivScalar(float64(len(predictions)))
}

func checkLoss(name string, predictions, targets []*autodiff.Value) {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("%s: %d predictions for %d targets", name, len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic(name + ": no predictions")
	}
}
