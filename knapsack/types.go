// Package knapsack defines sentinel errors, options and result types shared by
// the recursive, memoized and bottom-up solvers.
package knapsack

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInput is the umbrella error for inputs rejected before any computation.
// Every more specific validation error below wraps it.
var ErrInvalidInput = errors.New("knapsack: invalid input")

var (
	// ErrLengthMismatch indicates len(values) != len(weights).
	ErrLengthMismatch = fmt.Errorf("%w: values and weights differ in length", ErrInvalidInput)

	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidInput)

	// ErrNegativeWeight indicates some weights[i] < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidInput)

	// ErrZeroWeight indicates a zero-weight item combined with a positive capacity.
	// Such an item fits forever and the recurrence would never terminate.
	ErrZeroWeight = fmt.Errorf("%w: zero weight with positive capacity", ErrInvalidInput)

	// ErrNegativeValue indicates some values[i] < 0 or NaN.
	ErrNegativeValue = fmt.Errorf("%w: negative or NaN value", ErrInvalidInput)
)

// ErrRecursionExhausted indicates that a recursive strategy went deeper than the
// configured MaxDepth. The caller should report "not computed" for this input.
var ErrRecursionExhausted = errors.New("knapsack: recursion depth exhausted")

// ErrBadChoice indicates a choice table that cannot be walked back with the given
// weights (index out of range, or an item heavier than the remaining capacity).
var ErrBadChoice = errors.New("knapsack: choice table inconsistent with weights")

// ErrUnknownMethod is returned by Compute for an unrecognised method name.
var ErrUnknownMethod = errors.New("knapsack: unknown method")

// NoChoice marks a ChoiceTable entry where no item improved dp[w].
const NoChoice = -1

// DefaultMaxDepth is the recursion bound used by Recursive and Memoized unless
// overridden with WithMaxDepth. Depth is counted in nested calls below the
// top-level one, so capacity/min(weights) must not exceed it.
const DefaultMaxDepth = 1000

// Method names accepted by Compute.
const (
	MethodRecursive = "recursive"
	MethodMemoized  = "memoized"
	MethodDP        = "dp"
)

// Methods lists every strategy in the order the benchmark driver reports them.
var Methods = []string{MethodRecursive, MethodMemoized, MethodDP}

// Memo caches the best value per remaining capacity for Memoized.
// Its lifetime is one top-level invocation; it may be reused for smaller
// capacities of the same item set, never across item sets.
type Memo map[int]float64

// Usage maps an item index to the number of copies used.
type Usage map[int]int

// Indices returns the item indices present in u in ascending order.
func (u Usage) Indices() []int {
	idx := make([]int, 0, len(u))
	for i := range u {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	return idx
}

// Weight returns Σ count·weights[i] over the used items.
func (u Usage) Weight(weights []int) int {
	total := 0
	for i, c := range u {
		total += c * weights[i]
	}

	return total
}

// Value returns Σ count·values[i] over the used items.
func (u Usage) Value(values []float64) float64 {
	var total float64
	for _, i := range u.Indices() { // fixed order keeps float sums reproducible
		total += float64(u[i]) * values[i]
	}

	return total
}

// Solution bundles the optimal value with the reconstructed item usage.
type Solution struct {
	Value      float64 // dp[capacity]
	Usage      Usage   // copies per item index
	Weight     int     // total weight of Usage, always ≤ capacity
	Operations int     // DP operation count (capacity·n)
}

// Options configures the recursive strategies.
type Options struct {
	// MaxDepth bounds the recursion depth; see DefaultMaxDepth.
	MaxDepth int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{MaxDepth: DefaultMaxDepth}.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// WithMaxDepth overrides the recursion bound. Panics if d < 1.
func WithMaxDepth(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("knapsack: WithMaxDepth(%d) must be ≥ 1", d))
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// resolveOptions applies opts over DefaultOptions in order.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the strategy named by method and returns (value, operations).
// For MethodDP the value is dp[capacity]. MethodMemoized uses a fresh Memo.
func Compute(method string, values []float64, weights []int, capacity int, opts ...Option) (float64, int, error) {
	switch method {
	case MethodRecursive:
		return Recursive(values, weights, capacity, opts...)
	case MethodMemoized:
		return Memoized(values, weights, capacity, Memo{}, opts...)
	case MethodDP:
		dp, _, ops, err := DP(values, weights, capacity)
		if err != nil {
			return 0, 0, err
		}
		return dp[capacity], ops, nil
	default:
		return 0, 0, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
}
