package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opcount/builder"
	"github.com/katalvlaran/opcount/prim_kruskal" // package under test
)

// buildDiamond constructs the reference graph:
//
//	A—B (1), A—C (3), A—D (4), B—D (2), C—D (5).
//
// Its MST from A is A—B, B—D, A—C with total weight 6.
func buildDiamond() prim_kruskal.Graph {
	return prim_kruskal.Graph{
		"A": {{1, "B"}, {3, "C"}, {4, "D"}},
		"B": {{1, "A"}, {2, "D"}},
		"C": {{3, "A"}, {5, "D"}},
		"D": {{4, "A"}, {2, "B"}, {5, "C"}},
	}
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
// - First, it ensures connectivity by adding a chain V0—V1—...—V(n-1) with random weights [1..11).
// - Then it adds (edgesCount - (n-1)) additional random non-loop edges with weights [1..101).
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) prim_kruskal.Graph {
	g := prim_kruskal.Graph{}
	r := rand.New(rand.NewSource(42))

	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}
	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight)
	}
	for i := 0; i < edgesCount-(n-1); {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight)
		i++
	}

	return g
}

// bruteForceMST enumerates every (|V|-1)-edge subset and returns the cheapest
// one that connects all vertices. Only usable on tiny graphs.
func bruteForceMST(g prim_kruskal.Graph) float64 {
	type edge struct {
		u, v string
		w    float64
	}
	var edges []edge
	for u, adj := range g {
		for _, nb := range adj {
			if u < nb.To {
				edges = append(edges, edge{u, nb.To, nb.Weight})
			}
		}
	}
	vs := g.Vertices()
	k := len(vs) - 1
	best := -1.0

	var pick func(start int, chosen []edge)
	pick = func(start int, chosen []edge) {
		if len(chosen) == k {
			parent := make(map[string]string, len(vs))
			for _, v := range vs {
				parent[v] = v
			}
			var find func(string) string
			find = func(x string) string {
				for parent[x] != x {
					x = parent[x]
				}
				return x
			}
			total := 0.0
			for _, e := range chosen {
				a, b := find(e.u), find(e.v)
				if a == b {
					return // cycle
				}
				parent[a] = b
				total += e.w
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, make([]edge, 0, k))

	return best
}

// TestPrim_Diamond pins edges, cost and operation count on the reference graph.
func TestPrim_Diamond(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildDiamond(), "A")
	require.NoError(t, err)

	want := []prim_kruskal.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 2},
		{From: "A", To: "C", Weight: 3},
	}
	if diff := cmp.Diff(want, tree.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6.0, tree.Total)
	// 4 pops (A, B, D, C) + 3+2+3+2 neighbor scans.
	assert.Equal(t, 14, tree.Operations)
	assert.Equal(t, 4, tree.Visited)
	assert.True(t, tree.Spanning)
	assert.NoError(t, tree.Err())
}

// TestPrim_EveryRootSameCost: the MST weight does not depend on the start vertex.
func TestPrim_EveryRootSameCost(t *testing.T) {
	g := buildDiamond()
	for _, root := range g.Vertices() {
		tree, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		assert.Equal(t, 6.0, tree.Total, "root %s", root)
		assert.Len(t, tree.Edges, len(g)-1, "root %s", root)
	}
}

// TestPrim_Disconnected flags an isolated vertex instead of returning an error.
func TestPrim_Disconnected(t *testing.T) {
	g := buildDiamond()
	g.AddVertex("E")

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.False(t, tree.Spanning)
	assert.ErrorIs(t, tree.Err(), prim_kruskal.ErrDisconnected)
	assert.Less(t, len(tree.Edges), len(g)-1)
	assert.Equal(t, 4, tree.Visited)
	assert.Equal(t, 6.0, tree.Total)
	// The two stale entries (D via A, C via D) are popped once the queue drains.
	assert.Equal(t, 16, tree.Operations)

	// Starting from the isolated vertex itself yields an empty, non-spanning tree.
	tree, err = prim_kruskal.Prim(g, "E")
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Equal(t, 1, tree.Visited)
	assert.Equal(t, 1, tree.Operations)
	assert.False(t, tree.Spanning)
}

// TestPrim_TieBreak: with all weights equal the secondary key is the vertex ID,
// then the parent ID.
func TestPrim_TieBreak(t *testing.T) {
	g := prim_kruskal.Graph{}
	g.AddEdge("A", "C", 1)
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("B", "D", 1)

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	want := []prim_kruskal.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 1},
	}
	if diff := cmp.Diff(want, tree.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
}

// TestPrim_TieBreak_EqualCycle closes C_5 with equal weights: Prim walks the
// chain in ID order and reaches v4 through its smaller parent v0.
func TestPrim_TieBreak_EqualCycle(t *testing.T) {
	g, err := builder.Cycle(5,
		builder.WithIDScheme(builder.PrefixIDFn("v")),
		builder.WithWeightFn(builder.ConstantWeightFn(2)),
	)
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(g, "v0")
	require.NoError(t, err)
	want := []prim_kruskal.Edge{
		{From: "v0", To: "v1", Weight: 2},
		{From: "v1", To: "v2", Weight: 2},
		{From: "v2", To: "v3", Weight: 2},
		{From: "v0", To: "v4", Weight: 2},
	}
	if diff := cmp.Diff(want, tree.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	assert.Equal(t, 8.0, tree.Total)
	assert.Equal(t, 15, tree.Operations) // 5 pops + 10 adjacency entries

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, tree.Total, k.Total)
}

// TestPrim_ParallelEdges picks the lighter of two parallel edges.
func TestPrim_ParallelEdges(t *testing.T) {
	g := prim_kruskal.Graph{}
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "B", 1)

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, tree.Total)
	assert.Len(t, tree.Edges, 1)
}

// TestPrim_SingleVertex returns an empty spanning tree after one pop.
func TestPrim_SingleVertex(t *testing.T) {
	g := prim_kruskal.Graph{}
	g.AddVertex("X")

	tree, err := prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.Total)
	assert.Equal(t, 1, tree.Operations)
	assert.True(t, tree.Spanning)
}

// TestPrim_NoSymmetrisation: a one-way entry is only usable from its owner.
func TestPrim_NoSymmetrisation(t *testing.T) {
	g := prim_kruskal.Graph{"A": {{2, "B"}}, "B": nil}
	assert.ErrorIs(t, g.Symmetric(), prim_kruskal.ErrAsymmetric)

	fromA, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.True(t, fromA.Spanning)

	fromB, err := prim_kruskal.Prim(g, "B")
	require.NoError(t, err)
	assert.False(t, fromB.Spanning)
}

// TestPrim_Validation covers every input error.
func TestPrim_Validation(t *testing.T) {
	_, err := prim_kruskal.Prim(prim_kruskal.Graph{}, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = prim_kruskal.Prim(buildDiamond(), "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, err = prim_kruskal.Prim(buildDiamond(), "Z")
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexNotFound)

	_, err = prim_kruskal.Prim(prim_kruskal.Graph{"A": {{1, "Q"}}}, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDanglingNeighbor)

	nan := prim_kruskal.Graph{}
	nan.AddEdge("A", "B", math.NaN())
	_, err = prim_kruskal.Prim(nan, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWeight)
}

// TestKruskal_Diamond agrees with Prim on the reference graph.
func TestKruskal_Diamond(t *testing.T) {
	tree, err := prim_kruskal.Kruskal(buildDiamond())
	require.NoError(t, err)
	assert.Equal(t, 6.0, tree.Total)
	assert.Len(t, tree.Edges, 3)
	assert.True(t, tree.Spanning)
	assert.Equal(t, 4, tree.Visited)
}

// TestKruskal_Forest reports the spanning forest of a disconnected graph.
func TestKruskal_Forest(t *testing.T) {
	g := buildDiamond()
	g.AddEdge("X", "Y", 7)

	tree, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.False(t, tree.Spanning)
	assert.ErrorIs(t, tree.Err(), prim_kruskal.ErrDisconnected)
	assert.Equal(t, 13.0, tree.Total)
	assert.Len(t, tree.Edges, 4)
	assert.Equal(t, 6, tree.Visited)
}

// TestBruteForce_SmallGraphs compares Prim and Kruskal to exhaustive enumeration.
func TestBruteForce_SmallGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := prim_kruskal.Graph{}
		r := rand.New(rand.NewSource(seed))
		for i := 1; i < 6; i++ {
			g.AddEdge(fmt.Sprintf("N%d", r.Intn(i)), fmt.Sprintf("N%d", i), float64(1+r.Intn(9)))
		}
		for i := 0; i < 4; i++ {
			u, v := r.Intn(6), r.Intn(6)
			if u != v {
				g.AddEdge(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), float64(1+r.Intn(9)))
			}
		}

		want := bruteForceMST(g)
		p, err := prim_kruskal.Prim(g, "N0")
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		assert.Equal(t, want, p.Total, "seed %d prim", seed)
		assert.Equal(t, want, k.Total, "seed %d kruskal", seed)
		assert.Len(t, p.Edges, len(g)-1)
	}
}

// TestBruteForce_CompleteGraphs checks K_5 with small integer weights, where
// equal-cost edges are common, against exhaustive enumeration.
func TestBruteForce_CompleteGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.Complete(5,
			builder.WithIDScheme(builder.ExcelColumnIDFn),
			builder.WithWeightFn(builder.IntegerWeightFn(1, 5)),
			builder.WithSeed(seed),
		)
		require.NoError(t, err)

		want := bruteForceMST(g)
		p, err := prim_kruskal.Prim(g, "A")
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		assert.Equal(t, want, p.Total, "seed %d prim", seed)
		assert.Equal(t, want, k.Total, "seed %d kruskal", seed)
		assert.Len(t, p.Edges, 4)
		assert.True(t, p.Spanning)
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger randomly generated graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, k.Edges, len(g)-1)

	p, err := prim_kruskal.Prim(g, "V0")
	require.NoError(t, err)
	assert.Len(t, p.Edges, len(g)-1)

	const tolerance = 1e-10
	assert.InDelta(t, k.Total, p.Total, tolerance)
}

// TestCompute_Dispatch runs both methods through Compute and rejects unknown names.
func TestCompute_Dispatch(t *testing.T) {
	g := buildDiamond()

	p, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, p.Total)
	assert.Equal(t, "A", p.Edges[0].From, "default root is the smallest vertex ID")

	k, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.Equal(t, 6.0, k.Total)

	p, err = prim_kruskal.Compute(g, prim_kruskal.WithRoot("C"))
	require.NoError(t, err)
	assert.Equal(t, "C", p.Edges[0].From)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestGraph_Helpers covers AddEdge, Vertices, EdgeCount and Symmetric.
func TestGraph_Helpers(t *testing.T) {
	g := buildDiamond()
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 10, g.EdgeCount())
	assert.NoError(t, g.Symmetric())
	assert.NoError(t, g.Validate())

	g.AddEdge("L", "L", 3)
	assert.Len(t, g["L"], 1, "self-loop stored once")
	assert.NoError(t, g.Symmetric())
}
