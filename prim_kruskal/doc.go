// Package prim_kruskal computes Minimum Spanning Trees over a plain adjacency-list
// Graph and counts the work done, so that runs can be compared without timers.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices and minimises the sum of its edge weights.
//
//   - Why count operations?
//     Wall-clock time depends on the machine; the number of heap pops and adjacency
//     scans does not. The benchmark driver reports both.
//
// The Graph
//
//	Graph is map[vertexID][]Neighbor{Weight, To}. An undirected edge must be listed
//	under both endpoints with the same weight. Graph.AddEdge keeps that invariant;
//	hand-built maps can be checked with Graph.Symmetric. Prim never symmetrises.
//
// Algorithms Provided
//
//   - Prim(g Graph, start string) (Tree, error)
//
//   - Strategy: grow one tree from start. A min-heap holds candidate edges; a vertex
//     may have several pending entries and the stale ones are discarded when popped
//     (lazy deletion, no decrease-key).
//
//   - Operations: one per heap pop (stale pops included) plus one per adjacency
//     entry scanned from a newly admitted vertex.
//
//   - Ties: weight, then vertex ID, then parent ID, then push order.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Kruskal(g Graph) (Tree, error)
//
//   - Strategy: sort all edges, merge components with a disjoint-set forest
//     (github.com/spakin/disjoint). Used as an independent cross-check of Prim.
//
//   - Operations: one per edge considered.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - ParseGraph(r io.Reader) (Graph, error)
//     Reads `vertex X` / `edge U V W` statements into a symmetric Graph.
//
// Disconnected Graphs
//
//	Neither algorithm fails on a disconnected graph. The returned Tree has
//	Spanning == false, covers only what was reachable (Prim) or forms a forest
//	(Kruskal), and Tree.Err() returns ErrDisconnected.
//
// Error Conditions
//
//   - ErrEmptyGraph       — no vertices.
//   - ErrEmptyRoot        — Prim with start == "".
//   - ErrVertexNotFound   — Prim with a start that is not a vertex.
//   - ErrDanglingNeighbor — adjacency entry to a non-vertex.
//   - ErrBadWeight        — NaN weight.
//   - ErrParse            — ParseGraph syntax error.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
