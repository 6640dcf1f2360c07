// Package bench drives the instrumented algorithms over growing inputs and
// reports what they cost.
//
// A run is described by Config (TOML, see LoadConfig) and produces a Report:
//
//   - RunKnapsack: every knapsack strategy at every capacity. Naive recursion
//     that exceeds its depth bound is recorded as failed; the other
//     strategies still run. Agree flags rows whose strategies found
//     different optima.
//   - RunMST: Prim and Kruskal on connected random graphs of each size,
//     plus an optional hand-written graph file.
//
// Reports are rendered by WriteTable (terminal table), WriteJSON, Metrics
// (Prometheus text file) and PlotKnapsack / PlotMST (PNG, log-scale Y).
package bench
