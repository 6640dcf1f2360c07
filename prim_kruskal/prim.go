// Package prim_kruskal provides an instrumented implementation of Prim's Minimum
// Spanning Tree algorithm over an adjacency-list Graph, using a lazy-deletion min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"
)

// Prim grows a Minimum Spanning Tree outwards from start and counts its steps.
//
// Error Conditions:
//   - ErrEmptyGraph       : the graph has no vertices.
//   - ErrEmptyRoot        : start == "".
//   - ErrVertexNotFound   : start is not a vertex of g.
//   - ErrDanglingNeighbor : an adjacency entry names a non-vertex.
//   - ErrBadWeight        : an edge weight is NaN.
//
// A graph disconnected from start is NOT an error: the tree of the reachable
// component is returned with Spanning == false (see Tree.Err).
//
// Steps:
//  1. Validate inputs.
//  2. Seed the heap with the sentinel entry (weight 0, start, no parent).
//  3. While the heap is non-empty and fewer than |V| vertices are visited:
//     a. Pop the minimum entry; ops++.
//     b. If its vertex is already visited, discard it (stale entry).
//     c. Mark it visited; if it has a parent, record (parent, vertex, weight).
//     d. For every adjacency entry of the vertex: ops++; if the neighbor is not
//     visited, push (weight, neighbor, vertex), even when the neighbor already
//     has a pending entry. Duplicates are resolved at pop time by step b.
//  4. Spanning = visited == |V|.
//
// Tie-break: entries compare by weight, then vertex ID, then parent ID (the
// sentinel first), then push order. Equal inputs therefore give equal trees.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g Graph, start string) (Tree, error) {
	// 1. Validate.
	if len(g) == 0 {
		return Tree{}, ErrEmptyGraph
	}
	if start == "" {
		return Tree{}, ErrEmptyRoot
	}
	if _, ok := g[start]; !ok {
		return Tree{}, fmt.Errorf("root %q: %w", start, ErrVertexNotFound)
	}
	if err := g.Validate(); err != nil {
		return Tree{}, err
	}

	n := len(g)
	visited := make(map[string]bool, n)
	tree := Tree{Edges: make([]Edge, 0, n-1)}

	// 2. Sentinel entry for the root.
	pq := &primPQ{}
	heap.Init(pq)
	pq.push(0, start, "", false)

	// 3. Main loop.
	for pq.Len() > 0 && len(visited) < n {
		it := heap.Pop(pq).(primItem)
		tree.Operations++

		// 3b. Lazy deletion.
		if visited[it.vertex] {
			continue
		}

		// 3c. Admit the vertex.
		visited[it.vertex] = true
		if it.hasParent {
			tree.Edges = append(tree.Edges, Edge{From: it.parent, To: it.vertex, Weight: it.weight})
			tree.Total += it.weight
		}

		// 3d. Offer every edge leaving the new vertex.
		for _, nb := range g[it.vertex] {
			tree.Operations++
			if !visited[nb.To] {
				pq.push(nb.Weight, nb.To, it.vertex, true)
			}
		}
	}

	// 4. Coverage.
	tree.Visited = len(visited)
	tree.Spanning = tree.Visited == n

	return tree, nil
}

// primItem is one candidate edge (parent → vertex, weight) waiting in the heap.
type primItem struct {
	weight    float64
	vertex    string
	parent    string
	hasParent bool
	seq       int
}

// primPQ implements heap.Interface as a min-heap of primItem.
type primPQ struct {
	items []primItem
	next  int // push counter for the final tie-break
}

// push wraps heap.Push with a fresh sequence number.
func (pq *primPQ) push(w float64, vertex, parent string, hasParent bool) {
	heap.Push(pq, primItem{weight: w, vertex: vertex, parent: parent, hasParent: hasParent, seq: pq.next})
	pq.next++
}

// Len returns the number of pending entries.
func (pq *primPQ) Len() int { return len(pq.items) }

// Less orders by weight, vertex, parent (sentinel first), push order.
func (pq *primPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	switch {
	case a.weight != b.weight:
		return a.weight < b.weight
	case a.vertex != b.vertex:
		return a.vertex < b.vertex
	case a.hasParent != b.hasParent:
		return !a.hasParent
	case a.parent != b.parent:
		return a.parent < b.parent
	default:
		return a.seq < b.seq
	}
}

// Swap swaps entries i and j.
func (pq *primPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *primPQ) Push(x interface{}) { pq.items = append(pq.items, x.(primItem)) }

// Pop removes the last entry; called by heap.Pop after moving the minimum there.
func (pq *primPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
