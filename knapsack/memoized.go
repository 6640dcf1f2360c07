package knapsack

// Memoized computes the unbounded knapsack optimum by recursion over remaining
// capacity, caching the best value of every sub-capacity in memo.
//
// Contract:
//   - memo is owned by the caller and is NOT reset: entries written by earlier
//     calls on the same item set are reused. A nil memo is replaced by a fresh
//     map that lives only for this call.
//   - A memo hit returns immediately and charges zero operations.
//   - On a miss every item examined costs one operation (plus child counts), and
//     memo[c] is written before returning. Counts are never cached.
//
// Error Conditions: as Recursive. On ErrRecursionExhausted the memo may hold
// entries for the sub-capacities finished before the bound was hit; all of them
// are exact.
//
// Complexity: O(n·W) time for a fresh memo, O(W) memo size, O(W/min w) stack.
func Memoized(values []float64, weights []int, capacity int, memo Memo, opts ...Option) (float64, int, error) {
	if err := validate(MethodMemoized, values, weights, capacity); err != nil {
		return 0, 0, err
	}
	if memo == nil {
		memo = make(Memo, capacity+1)
	}
	o := resolveOptions(opts)
	s := &solver{method: MethodMemoized, values: values, weights: weights, maxDepth: o.MaxDepth, memo: memo}

	return s.memoized(capacity, 0)
}

// memoized is the cached recurrence.
func (s *solver) memoized(capacity, depth int) (float64, int, error) {
	if v, ok := s.memo[capacity]; ok {
		return v, 0, nil
	}
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
		sub, subOps, err := s.memoized(capacity-s.weights[i], depth+1)
		if err != nil {
			return 0, 0, err
		}
		ops += subOps
		if v+sub > best {
			best = v + sub
		}
	}
	s.memo[capacity] = best

	return best, ops, nil
}
