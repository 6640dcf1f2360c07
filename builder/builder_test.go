package builder_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opcount/builder"
	"github.com/katalvlaran/opcount/prim_kruskal"
)

// requireSpanning runs Prim from the smallest vertex and checks the result is a
// spanning tree whose cost matches Kruskal's.
func requireSpanning(t *testing.T, g prim_kruskal.Graph) prim_kruskal.Tree {
	t.Helper()
	require.NoError(t, g.Symmetric())

	p, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	require.True(t, p.Spanning)
	require.Len(t, p.Edges, len(g)-1)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.InDelta(t, k.Total, p.Total, 1e-9)

	return p
}

func TestTopologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		build       func() (prim_kruskal.Graph, error)
		vertices    int
		entries     int // adjacency entries, 2·|E|
		mstTotal    float64
		firstVertex string
	}{
		{"Path4", func() (prim_kruskal.Graph, error) { return builder.Path(4) }, 4, 6, 3, "0"},
		{"Cycle5", func() (prim_kruskal.Graph, error) { return builder.Cycle(5) }, 5, 10, 4, "0"},
		{"Star5", func() (prim_kruskal.Graph, error) { return builder.Star(5) }, 5, 8, 4, "0"},
		{"Complete4", func() (prim_kruskal.Graph, error) { return builder.Complete(4) }, 4, 12, 3, "0"},
		{"Complete1", func() (prim_kruskal.Graph, error) { return builder.Complete(1) }, 1, 0, 0, "0"},
		{"RandomConnected_p0", func() (prim_kruskal.Graph, error) { return builder.RandomConnected(6, 0) }, 6, 10, 5, "0"},
		{"RandomConnected_p1", func() (prim_kruskal.Graph, error) { return builder.RandomConnected(5, 1) }, 5, 20, 4, "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.NoError(t, err)
			assert.Len(t, g, tc.vertices)
			assert.Equal(t, tc.entries, g.EdgeCount())
			assert.Equal(t, tc.firstVertex, g.Vertices()[0])

			tree := requireSpanning(t, g)
			assert.InDelta(t, tc.mstTotal, tree.Total, 1e-9)
		})
	}
}

func TestTopologies_TooFewVertices(t *testing.T) {
	t.Parallel()

	for name, build := range map[string]func() (prim_kruskal.Graph, error){
		"Path1":     func() (prim_kruskal.Graph, error) { return builder.Path(1) },
		"Cycle2":    func() (prim_kruskal.Graph, error) { return builder.Cycle(2) },
		"Star1":     func() (prim_kruskal.Graph, error) { return builder.Star(1) },
		"Complete0": func() (prim_kruskal.Graph, error) { return builder.Complete(0) },
		"Random0":   func() (prim_kruskal.Graph, error) { return builder.RandomConnected(0, 0.5, builder.WithSeed(1)) },
	} {
		g, err := build()
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.Nil(t, g, name)
	}
}

func TestRandomConnected_Validation(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomConnected(5, -0.1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomConnected(5, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomConnected(5, math.NaN(), builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomConnected(5, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	assert.Contains(t, err.Error(), "RandomConnected")
}

func TestRandomConnected_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() prim_kruskal.Graph {
		g, err := builder.RandomConnected(32, 0.2,
			builder.WithSeed(7),
			builder.WithWeightFn(builder.IntegerWeightFn(1, 9)),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed, different graphs (-a +b):\n%s", diff)
	}

	pa, err := prim_kruskal.Prim(a, "0")
	require.NoError(t, err)
	pb, err := prim_kruskal.Prim(b, "0")
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestRandomConnected_AlwaysSpans(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 10; seed++ {
		g, err := builder.RandomConnected(20, 0.1,
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(0, 10)),
		)
		require.NoError(t, err)
		// Every vertex, not just the first, must reach the whole graph.
		for _, v := range []string{"0", "7", "19"} {
			tree, err := prim_kruskal.Prim(g, v)
			require.NoError(t, err)
			assert.True(t, tree.Spanning, "seed=%d root=%s", seed, v)
		}
		requireSpanning(t, g)
	}
}

func TestStar_PrimOperations(t *testing.T) {
	t.Parallel()

	g, err := builder.Star(5)
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(g, "0")
	require.NoError(t, err)

	// Hub: 1 pop + 4 entries; each leaf: 1 pop + 1 entry.
	assert.Equal(t, 13, tree.Operations)
	for _, e := range tree.Edges {
		assert.Equal(t, "0", e.From)
	}
}
