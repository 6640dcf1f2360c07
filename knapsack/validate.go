package knapsack

import (
	"fmt"
	"math"
)

// validate enforces the input contract shared by all strategies:
// equal lengths, capacity ≥ 0, weights ≥ 0, no zero weight when capacity > 0,
// and values that are neither negative nor NaN.
//
// Complexity: O(n).
func validate(method string, values []float64, weights []int, capacity int) error {
	if len(values) != len(weights) {
		return fmt.Errorf("%s: len(values)=%d, len(weights)=%d: %w",
			method, len(values), len(weights), ErrLengthMismatch)
	}
	if capacity < 0 {
		return fmt.Errorf("%s: capacity=%d: %w", method, capacity, ErrNegativeCapacity)
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s: weights[%d]=%d: %w", method, i, w, ErrNegativeWeight)
		}
		if w == 0 && capacity > 0 {
			return fmt.Errorf("%s: weights[%d]=0, capacity=%d: %w", method, i, capacity, ErrZeroWeight)
		}
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%s: values[%d]=%g: %w", method, i, v, ErrNegativeValue)
		}
	}

	return nil
}
