// SPDX-License-Identifier: MIT

// Package builder generates deterministic prim_kruskal.Graph fixtures for tests,
// examples and benchmarks.
//
// Constructors:
//
//   - Path(n)               — P_n, n ≥ 2: edges i—i+1.
//   - Cycle(n)              — C_n, n ≥ 3: Path plus the closing edge n-1—0.
//   - Star(n)               — one hub ("0") and n-1 leaves, n ≥ 2.
//   - Complete(n)           — K_n, n ≥ 1: every unordered pair once.
//   - RandomConnected(n, p) — a spanning chain 0—1—…—n-1, then every other
//     pair {i,j} (i<j) added with probability p. Connected for any p, so
//     Prim from any vertex always spans the whole graph.
//
// Configuration is passed as functional options:
//
//   - WithSeed / WithRand   — RNG for RandomConnected and random weights.
//   - WithIDScheme          — vertex index → ID (DefaultIDFn, ExcelColumnIDFn, PrefixIDFn).
//   - WithWeightFn          — per-edge weight (DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn).
//
// Option constructors panic on meaningless arguments (nil functions, negative
// ranges). Constructors never panic: they return ErrTooFewVertices,
// ErrInvalidProbability or ErrNeedRandSource wrapped with the constructor name.
//
// Determinism: vertices are added in index order and edges in a fixed (i, j)
// order, so the same options and seed always produce the same graph.
package builder
