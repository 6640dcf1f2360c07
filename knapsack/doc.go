// Package knapsack solves the unbounded knapsack problem three ways and reports,
// next to every answer, how many elementary steps it took to get there.
//
// What & Why
//
//   - What is the unbounded knapsack?
//     Given item types i = 0..n-1 with value v[i] ≥ 0 and weight w[i] > 0, and a
//     capacity W ≥ 0, choose a multiset of items (any type may be taken any number
//     of times) maximising Σ v[i] subject to Σ w[i] ≤ W.
//
//   - Why three strategies?
//     They share one recurrence
//
//     best(c) = max{ v[i] + best(c - w[i]) : w[i] ≤ c },  best(c) = 0 if no item fits
//
//     and differ only in how often each sub-capacity is evaluated. The operation
//     counts make that difference visible without relying on wall-clock noise.
//
// Algorithms Provided
//
//   - Recursive(values, weights, capacity, opts...) (float64, int, error)
//     Plain recursion. Exponential: branching factor up to n, depth up to W/min(w).
//     One operation per item examined in every call.
//
//   - Memoized(values, weights, capacity, memo, opts...) (float64, int, error)
//     The same recursion with a caller-owned Memo (remaining capacity → best value).
//     A memo hit costs zero operations; only values are cached, never counts.
//
//   - DP(values, weights, capacity) (dp []float64, choice []int, ops int, err error)
//     Bottom-up table over w = 1..W and items in index order. Exactly W·n operations.
//     Ties keep the earlier-indexed item (strict improvement only).
//
//   - Reconstruct(choice, weights, capacity) (Usage, error)
//     Walks the choice table back from W to recover how many copies of each item
//     the DP solution uses.
//
//   - Solve(values, weights, capacity) (Solution, error)
//     DP + Reconstruct in one call.
//
// Recursion Depth
//
//	Both recursive strategies are depth-bounded. The bound defaults to
//	DefaultMaxDepth and can be changed with WithMaxDepth. Exceeding it yields
//	ErrRecursionExhausted; a partial value is never returned.
//
// Error Conditions
//
//   - ErrInvalidInput (and the more specific ErrLengthMismatch, ErrNegativeCapacity,
//     ErrNegativeWeight, ErrZeroWeight, ErrNegativeValue, all of which satisfy
//     errors.Is(err, ErrInvalidInput)). Checked before any computation.
//   - ErrRecursionExhausted: Recursive / Memoized only.
//   - ErrBadChoice: Reconstruct was handed a table that does not match the weights.
//
// See example_test.go for runnable examples.
package knapsack
