// Package opcount solves two classic optimisation problems and counts the
// work each strategy does, so the strategies can be compared on growing inputs.
//
// What is in the box?
//
//   - Unbounded knapsack: naive recursion, memoized recursion, bottom-up DP
//     with reconstruction of the chosen items
//   - Minimum spanning tree: Prim with a lazy-deletion min-heap, plus Kruskal
//     (union-find) as an independent cross-check
//   - Graph fixtures: paths, cycles, stars, complete and connected random graphs
//   - A benchmark driver with terminal tables, JSON, Prometheus metrics and charts
//
// Every algorithm returns its result together with an operation count:
// one per candidate item examined (knapsack) or one per heap pop and per
// adjacency entry scanned (Prim).
//
// Subpackages:
//
//	knapsack/     — Recursive, Memoized, DP, Reconstruct, Solve
//	prim_kruskal/ — Graph, Prim, Kruskal, ParseGraph
//	builder/      — deterministic Graph generators for tests and benchmarks
//	bench/        — Config (TOML), RunKnapsack, RunMST, reports, metrics, plots
//	cmd/opbench/  — command-line benchmark runner
//
// Quick ASCII example:
//
//	    A─1─B
//	    │ ╲ │
//	    3  4 2
//	    │   ╲│
//	    C─5─D
//
//	Prim from A picks A─B, B─D, A─C: total 6 in 14 operations.
//
//	go install github.com/katalvlaran/opcount/cmd/opbench@latest
package opcount
