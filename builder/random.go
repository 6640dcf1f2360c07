// SPDX-License-Identifier: MIT
// Package: opcount/builder
//
// random.go — RandomConnected(n, p): Erdős–Rényi-like sampling over a spanning chain.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//   • Chain edges i—i+1 are always present, so the graph is connected.
//   • Extra pairs {i,j}, j > i+1, are tried in i-then-j ascending order.
//
// Complexity: O(n²) Bernoulli trials, O(n + |E|) memory.

package builder

import (
	"math"

	"github.com/katalvlaran/opcount/prim_kruskal"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomConnected builds a connected random graph on n vertices. Every
// non-chain pair is added independently with probability p.
func RandomConnected(n int, p float64, opts ...BuilderOption) (prim_kruskal.Graph, error) {
	if n < minRandomNodes {
		return nil, builderErrorf(methodRandomConnected, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
	}
	if p < probMin || p > probMax || math.IsNaN(p) {
		return nil, builderErrorf(methodRandomConnected, ErrInvalidProbability,
			"p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, builderErrorf(methodRandomConnected, ErrNeedRandSource, "p=%.6f", p)
	}

	g := addVertices(n, cfg)

	// Spanning chain first.
	for i := 0; i+1 < n; i++ {
		g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), cfg.weight())
	}

	// Extra edges.
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if !trial(cfg, p) {
				continue
			}
			g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
		}
	}

	return g, nil
}

// trial is one Bernoulli draw; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
