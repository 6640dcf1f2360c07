package bench

import (
	"github.com/katalvlaran/opcount/builder"
	"github.com/katalvlaran/opcount/prim_kruskal"
)

// Topologies accepted in MSTConfig.Topology. Generated rows carry the
// topology name as their Source.
const (
	TopologyRandom   = "random"
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
)

// Vertex naming schemes accepted in MSTConfig.IDScheme.
const (
	IDSchemeIndex    = "index"    // "0", "1", ...
	IDSchemeLetters  = "letters"  // "A", "B", ..., "Z", "AA", ...
	IDSchemePrefixed = "prefixed" // "v0", "v1", ...
)

// topologyMinSize is the smallest vertex count each constructor accepts.
var topologyMinSize = map[string]int{
	TopologyRandom:   1,
	TopologyPath:     2,
	TopologyCycle:    3,
	TopologyStar:     2,
	TopologyComplete: 1,
}

var idSchemes = map[string]builder.IDFn{
	IDSchemeIndex:    builder.DefaultIDFn,
	IDSchemeLetters:  builder.ExcelColumnIDFn,
	IDSchemePrefixed: builder.PrefixIDFn("v"),
}

func (c MSTConfig) topology() string {
	if c.Topology == "" {
		return TopologyRandom
	}
	return c.Topology
}

func (c MSTConfig) idScheme() string {
	if c.IDScheme == "" {
		return IDSchemeIndex
	}
	return c.IDScheme
}

// weightFn maps the weight settings onto a builder distribution.
func (c MSTConfig) weightFn() builder.WeightFn {
	switch {
	case c.MinWeight == c.MaxWeight:
		return builder.ConstantWeightFn(c.MinWeight)
	case c.IntegerWeights:
		return builder.IntegerWeightFn(int(c.MinWeight), int(c.MaxWeight))
	default:
		return builder.UniformWeightFn(c.MinWeight, c.MaxWeight)
	}
}

// buildGraph generates the n-vertex graph of the configured topology, seeded
// with Seed+n so every size is reproducible on its own.
func (c MSTConfig) buildGraph(n int) (prim_kruskal.Graph, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(c.Seed + int64(n)),
		builder.WithIDScheme(idSchemes[c.idScheme()]),
		builder.WithWeightFn(c.weightFn()),
	}
	switch c.topology() {
	case TopologyPath:
		return builder.Path(n, opts...)
	case TopologyCycle:
		return builder.Cycle(n, opts...)
	case TopologyStar:
		return builder.Star(n, opts...)
	case TopologyComplete:
		return builder.Complete(n, opts...)
	default:
		return builder.RandomConnected(n, c.Density, opts...)
	}
}
