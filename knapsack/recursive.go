package knapsack

import "fmt"

// Recursive computes the unbounded knapsack optimum by plain recursion.
//
// Recurrence (capacity c):
//
//	best(c) = max over i with 0 < weights[i] ≤ c of values[i] + best(c - weights[i])
//	best(c) = 0 when no item fits (including c = 0)
//
// Operation count: every item examined in every call counts one operation, and
// each child call's count is added to its caller's. Nothing is cached, so equal
// sub-capacities reached along different paths are recomputed.
//
// Error Conditions:
//   - ErrInvalidInput family: see validate.
//   - ErrRecursionExhausted: nesting exceeded Options.MaxDepth.
//
// Complexity: O(n^(W/min w)) time, O(W/min w) stack.
func Recursive(values []float64, weights []int, capacity int, opts ...Option) (float64, int, error) {
	if err := validate(MethodRecursive, values, weights, capacity); err != nil {
		return 0, 0, err
	}
	o := resolveOptions(opts)
	s := &solver{method: MethodRecursive, values: values, weights: weights, maxDepth: o.MaxDepth}

	return s.recursive(capacity, 0)
}

// solver carries the read-only problem plus per-invocation state through the
// recursion so each frame only passes (capacity, depth).
type solver struct {
	method   string
	values   []float64
	weights  []int
	maxDepth int
	memo     Memo // nil for Recursive
}

// exhausted builds the depth error for the current frame.
func (s *solver) exhausted(capacity, depth int) error {
	return fmt.Errorf("%s: depth %d > max %d at capacity %d: %w",
		s.method, depth, s.maxDepth, capacity, ErrRecursionExhausted)
}

// recursive is the uncached recurrence.
func (s *solver) recursive(capacity, depth int) (float64, int, error) {
	if depth > s.maxDepth {
		return 0, 0, s.exhausted(capacity, depth)
	}

	var (
		best float64
		ops  int
	)
	for i, v := range s.values {
		ops++
		// A zero weight only passes validation at capacity 0, where it adds nothing.
		if s.weights[i] == 0 || s.weights[i] > capacity {
			continue
		}
		sub, subOps, err := s.recursive(capacity-s.weights[i], depth+1)
		if err != nil {
			return 0, 0, err
		}
		ops += subOps
		if v+sub > best {
			best = v + sub
		}
	}

	return best, ops, nil
}
