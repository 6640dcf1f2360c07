// Package prim_kruskal defines the adjacency graph, result types, configuration
// options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrEmptyGraph indicates a graph with no vertices; there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrVertexNotFound indicates the start vertex is not a key of the graph.
var ErrVertexNotFound = errors.New("prim_kruskal: vertex not found")

// ErrDanglingNeighbor indicates an adjacency entry pointing at a vertex that has
// no adjacency list of its own.
var ErrDanglingNeighbor = errors.New("prim_kruskal: neighbor is not a graph vertex")

// ErrBadWeight indicates a NaN edge weight, which has no place in a min-heap order.
var ErrBadWeight = errors.New("prim_kruskal: edge weight is NaN")

// ErrAsymmetric indicates an edge (u,v,w) without its (v,u,w) counterpart.
// Prim never symmetrises; Graph.Symmetric reports the first offender.
var ErrAsymmetric = errors.New("prim_kruskal: graph is not symmetric")

// ErrDisconnected indicates that the start vertex's component does not cover
// every vertex. Prim and Kruskal still return the partial tree; Tree.Err exposes
// this sentinel for callers that prefer error branching.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for an unrecognised method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// Neighbor is one adjacency entry: the weight of the edge and the vertex it reaches.
type Neighbor struct {
	Weight float64
	To     string
}

// Graph maps each vertex ID to its ordered adjacency list.
// An undirected edge must be listed under both endpoints with the same weight;
// use AddEdge to keep that invariant.
type Graph map[string][]Neighbor

// AddVertex ensures v is a key of g, with an empty adjacency list if new.
func (g Graph) AddVertex(v string) {
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
}

// AddEdge appends the undirected edge u—v with weight w to both adjacency lists.
// A self-loop is stored once.
func (g Graph) AddEdge(u, v string, w float64) {
	g[u] = append(g[u], Neighbor{Weight: w, To: v})
	if u != v {
		g[v] = append(g[v], Neighbor{Weight: w, To: u})
	}
}

// Vertices returns all vertex IDs in ascending order.
func (g Graph) Vertices() []string {
	ids := make([]string, 0, len(g))
	for v := range g {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the number of adjacency entries (2·|E| for a symmetric simple graph).
func (g Graph) EdgeCount() int {
	total := 0
	for _, adj := range g {
		total += len(adj)
	}

	return total
}

// Validate checks that every neighbor is a vertex and no weight is NaN.
// Complexity: O(V + E).
func (g Graph) Validate() error {
	for _, u := range g.Vertices() {
		for _, nb := range g[u] {
			if _, ok := g[nb.To]; !ok {
				return fmt.Errorf("%s→%s: %w", u, nb.To, ErrDanglingNeighbor)
			}
			if math.IsNaN(nb.Weight) {
				return fmt.Errorf("%s→%s: %w", u, nb.To, ErrBadWeight)
			}
		}
	}

	return nil
}

// Symmetric reports ErrAsymmetric for the first (in sorted vertex order) entry
// u→v (w) whose reverse v→u (w) is missing. Parallel edges are matched by count.
// Complexity: O(V + E).
func (g Graph) Symmetric() error {
	type key struct {
		from, to string
		w        float64
	}
	count := make(map[key]int, g.EdgeCount())
	for u, adj := range g {
		for _, nb := range adj {
			count[key{u, nb.To, nb.Weight}]++
		}
	}
	for _, u := range g.Vertices() {
		for _, nb := range g[u] {
			if count[key{u, nb.To, nb.Weight}] != count[key{nb.To, u, nb.Weight}] {
				return fmt.Errorf("%s→%s (%g): %w", u, nb.To, nb.Weight, ErrAsymmetric)
			}
		}
	}

	return nil
}

// Edge is one tree edge: From is the parent already in the tree, To the vertex it added.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Tree is the outcome of an MST run.
//
//   - Edges      — in the order they were added.
//   - Total      — Σ Edge.Weight.
//   - Operations — algorithm-specific step count (see Prim, Kruskal).
//   - Visited    — vertices covered: for Prim those reached from start, for
//     Kruskal those incident to a forest edge (all of them when Spanning).
//   - Spanning   — Visited == |V|. False means the graph is disconnected from the
//     start vertex and Edges only span the reachable component.
type Tree struct {
	Edges      []Edge
	Total      float64
	Operations int
	Visited    int
	Spanning   bool
}

// Err returns ErrDisconnected when the tree does not span the graph, nil otherwise.
func (t Tree) Err() error {
	if !t.Spanning {
		return ErrDisconnected
	}

	return nil
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   string — start vertex ID for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim with no root; Compute then starts
// from the smallest vertex ID.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// Compute applies opts over DefaultOptions and dispatches to Prim or Kruskal.
// With MethodPrim and no root, the smallest vertex ID is used.
func Compute(g Graph, opts ...Option) (Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodPrim:
		root := o.Root
		if root == "" && len(g) > 0 {
			root = g.Vertices()[0]
		}
		return Prim(g, root)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return Tree{}, fmt.Errorf("%q: %w", o.Method, ErrUnknownMethod)
	}
}
