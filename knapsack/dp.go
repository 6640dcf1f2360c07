package knapsack

import "fmt"

// DP solves the unbounded knapsack bottom-up.
//
// Algorithm Outline:
//  1. dp[0..W] = 0, choice[0..W] = NoChoice.
//  2. For w = 1..W (ascending):
//     For i = 0..n-1 (index order):
//     ops++
//     if weights[i] ≤ w:
//     cand = dp[w-weights[i]] + values[i]
//     if cand > dp[w]: dp[w], choice[w] = cand, i
//  3. Return dp, choice, ops.
//
// Guarantees:
//   - dp[w] is the best value with total weight ≤ w and is non-decreasing in w.
//   - Ties keep the earlier-indexed item because improvement must be strict.
//   - ops == W·n regardless of weights and values.
//
// Complexity: O(W·n) time, O(W) memory.
func DP(values []float64, weights []int, capacity int) (dp []float64, choice []int, ops int, err error) {
	if err = validate(MethodDP, values, weights, capacity); err != nil {
		return nil, nil, 0, err
	}

	dp = make([]float64, capacity+1)
	choice = make([]int, capacity+1)
	for w := range choice {
		choice[w] = NoChoice
	}

	n := len(weights)
	for w := 1; w <= capacity; w++ {
		for i := 0; i < n; i++ {
			ops++
			if weights[i] > w {
				continue
			}
			cand := dp[w-weights[i]] + values[i]
			if cand > dp[w] {
				dp[w] = cand
				choice[w] = i
			}
		}
	}

	return dp, choice, ops, nil
}

// Reconstruct walks choice back from capacity and counts how many copies of each
// item the DP solution uses.
//
//	w := capacity
//	while w > 0 and choice[w] != NoChoice:
//	  usage[choice[w]]++; w -= weights[choice[w]]
//
// Entries must come from DP over the same weights: an index outside
// [0, len(weights)), a non-positive weight or an item heavier than the remaining
// w yields ErrBadChoice (the walk would otherwise loop or index out of range).
//
// Complexity: O(W / min w).
func Reconstruct(choice []int, weights []int, capacity int) (Usage, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("Reconstruct: capacity=%d: %w", capacity, ErrNegativeCapacity)
	}
	if len(choice) <= capacity {
		return nil, fmt.Errorf("Reconstruct: len(choice)=%d ≤ capacity=%d: %w",
			len(choice), capacity, ErrBadChoice)
	}

	usage := Usage{}
	w := capacity
	for w > 0 && choice[w] != NoChoice {
		i := choice[w]
		if i < 0 || i >= len(weights) {
			return nil, fmt.Errorf("Reconstruct: choice[%d]=%d: %w", w, i, ErrBadChoice)
		}
		if weights[i] <= 0 || weights[i] > w {
			return nil, fmt.Errorf("Reconstruct: choice[%d]=%d has weight %d: %w", w, i, weights[i], ErrBadChoice)
		}
		usage[i]++
		w -= weights[i]
	}

	return usage, nil
}

// Solve runs DP and reconstructs the chosen items.
func Solve(values []float64, weights []int, capacity int) (Solution, error) {
	dp, choice, ops, err := DP(values, weights, capacity)
	if err != nil {
		return Solution{}, err
	}
	usage, err := Reconstruct(choice, weights, capacity)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Value:      dp[capacity],
		Usage:      usage,
		Weight:     usage.Weight(weights),
		Operations: ops,
	}, nil
}
