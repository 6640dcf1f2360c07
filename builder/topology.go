// SPDX-License-Identifier: MIT
// Package: opcount/builder
//
// topology.go — deterministic Path, Cycle, Star and Complete constructors.
//
// Contract:
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in a fixed order; each draws one weight from cfg.
//   • Sizes below the minimum return ErrTooFewVertices; never panics.

package builder

import (
	"github.com/katalvlaran/opcount/prim_kruskal"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds P_n: edges i—i+1 for i = 0..n-2.
// Complexity: O(n).
func Path(n int, opts ...BuilderOption) (prim_kruskal.Graph, error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
	}
	cfg := newBuilderConfig(opts...)
	g := addVertices(n, cfg)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), cfg.weight())
	}

	return g, nil
}

// Cycle builds C_n: the Path edges followed by the closing edge n-1—0.
// Complexity: O(n).
func Cycle(n int, opts ...BuilderOption) (prim_kruskal.Graph, error) {
	if n < minCycleNodes {
		return nil, builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
	}
	cfg := newBuilderConfig(opts...)
	g := addVertices(n, cfg)
	for i := 0; i < n; i++ {
		g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight())
	}

	return g, nil
}

// Star builds a star whose hub is vertex 0, with spokes 0—i for i = 1..n-1.
// Its MST is the star itself.
// Complexity: O(n).
func Star(n int, opts ...BuilderOption) (prim_kruskal.Graph, error) {
	if n < minStarNodes {
		return nil, builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
	}
	cfg := newBuilderConfig(opts...)
	g := addVertices(n, cfg)
	hub := cfg.idFn(0)
	for i := 1; i < n; i++ {
		g.AddEdge(hub, cfg.idFn(i), cfg.weight())
	}

	return g, nil
}

// Complete builds K_n: every pair {i,j} with i<j, i ascending then j ascending.
// Complexity: O(n²).
func Complete(n int, opts ...BuilderOption) (prim_kruskal.Graph, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
	}
	cfg := newBuilderConfig(opts...)
	g := addVertices(n, cfg)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
		}
	}

	return g, nil
}

// addVertices returns a graph holding vertices 0..n-1 and no edges.
func addVertices(n int, cfg builderConfig) prim_kruskal.Graph {
	g := make(prim_kruskal.Graph, n)
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}

	return g
}
