// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It is independent of Prim and serves as a cross-check for its total cost.
package prim_kruskal

import (
	"sort"

	"github.com/spakin/disjoint"
)

// Kruskal computes a minimum spanning forest of g by global edge sort + union-find.
//
// Every adjacency entry is treated as an undirected edge; the reverse copy of a
// symmetric edge is simply rejected by the union-find later. Self-loops are skipped.
//
// Error Conditions:
//   - ErrEmptyGraph       : the graph has no vertices.
//   - ErrDanglingNeighbor : an adjacency entry names a non-vertex.
//   - ErrBadWeight        : an edge weight is NaN.
//
// For a disconnected graph the forest is returned with Spanning == false.
//
// Steps:
//  1. Validate.
//  2. Collect entries, sort by (weight, lower endpoint, higher endpoint, from).
//  3. One disjoint.Element per vertex.
//  4. For each edge: ops++; if endpoints are in different sets, Union and keep it.
//     Stop once |V|-1 edges are kept.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g Graph) (Tree, error) {
	// 1. Validate.
	if len(g) == 0 {
		return Tree{}, ErrEmptyGraph
	}
	if err := g.Validate(); err != nil {
		return Tree{}, err
	}

	// 2. Collect and sort edges deterministically.
	edges := make([]Edge, 0, g.EdgeCount())
	for u, adj := range g {
		for _, nb := range adj {
			if nb.To == u {
				continue
			}
			edges = append(edges, Edge{From: u, To: nb.To, Weight: nb.Weight})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		alo, ahi := ordered(a.From, a.To)
		blo, bhi := ordered(b.From, b.To)
		if alo != blo {
			return alo < blo
		}
		if ahi != bhi {
			return ahi < bhi
		}
		return a.From < b.From
	})

	// 3. Disjoint sets, one per vertex.
	sets := make(map[string]*disjoint.Element, len(g))
	for v := range g {
		sets[v] = disjoint.NewElement()
	}

	// 4. Greedy selection.
	n := len(g)
	tree := Tree{Edges: make([]Edge, 0, n-1)}
	for _, e := range edges {
		if len(tree.Edges) == n-1 {
			break
		}
		tree.Operations++
		a, b := sets[e.From], sets[e.To]
		if a.Find() == b.Find() {
			continue
		}
		disjoint.Union(a, b)
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Weight
	}

	// A spanning tree leaves exactly one component, i.e. n-1 edges.
	tree.Spanning = len(tree.Edges) == n-1
	if tree.Spanning {
		tree.Visited = n
	} else {
		touched := make(map[string]struct{}, 2*len(tree.Edges))
		for _, e := range tree.Edges {
			touched[e.From], touched[e.To] = struct{}{}, struct{}{}
		}
		tree.Visited = len(touched)
	}

	return tree, nil
}

// ordered returns (min(a,b), max(a,b)).
func ordered(a, b string) (string, string) {
	if a < b {
		return a, b
	}

	return b, a
}
