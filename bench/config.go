package bench

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// ErrConfig wraps every configuration validation failure.
var ErrConfig = errors.New("bench: invalid config")

// Config is the benchmark description, usually loaded from TOML:
//
//	[knapsack]
//	values     = [10.0, 30.0, 20.0, 35.0]
//	weights    = [5, 10, 15, 25]
//	capacities = [10, 20, 30]
//	max_depth  = 1000
//
//	[mst]
//	topology        = "random"  # random, path, cycle, star or complete
//	id_scheme       = "index"   # index, letters or prefixed
//	sizes           = [8, 16, 32]
//	density         = 0.1       # random topology only
//	seed            = 1
//	min_weight      = 1.0
//	max_weight      = 100.0
//	integer_weights = false
//	graph_file      = "testdata/diamond.graph"
type Config struct {
	Knapsack KnapsackConfig `toml:"knapsack" json:"knapsack"`
	MST      MSTConfig      `toml:"mst" json:"mst"`
}

// KnapsackConfig is one item set run at several capacities.
type KnapsackConfig struct {
	Values     []float64 `toml:"values" json:"values"`
	Weights    []int     `toml:"weights" json:"weights"`
	Capacities []int     `toml:"capacities" json:"capacities"`
	// MaxDepth bounds both recursive strategies; 0 means knapsack.DefaultMaxDepth.
	MaxDepth int `toml:"max_depth" json:"max_depth"`
}

// MSTConfig describes the generated graphs fed to Prim and Kruskal.
type MSTConfig struct {
	// Topology picks the builder constructor; empty means TopologyRandom.
	Topology string `toml:"topology" json:"topology,omitempty"`
	// IDScheme names vertices; empty means IDSchemeIndex.
	IDScheme string  `toml:"id_scheme" json:"id_scheme,omitempty"`
	Sizes    []int   `toml:"sizes" json:"sizes"`
	Density  float64 `toml:"density" json:"density"`
	Seed     int64   `toml:"seed" json:"seed"`
	// Edge weights are drawn from [MinWeight, MaxWeight), or from the whole
	// numbers in [MinWeight, MaxWeight] when IntegerWeights is set. Equal
	// bounds give every edge that weight.
	MinWeight      float64 `toml:"min_weight" json:"min_weight"`
	MaxWeight      float64 `toml:"max_weight" json:"max_weight"`
	IntegerWeights bool    `toml:"integer_weights" json:"integer_weights,omitempty"`
	// GraphFile, when set, is parsed with prim_kruskal.ParseGraph and run as an extra row.
	GraphFile string `toml:"graph_file" json:"graph_file,omitempty"`
}

// DefaultConfig returns the reference item set (values 10,30,20,35; weights
// 5,10,15,25) at capacities 10..100 and random graphs of 8..128 vertices.
func DefaultConfig() Config {
	return Config{
		Knapsack: KnapsackConfig{
			Values:     []float64{10, 30, 20, 35},
			Weights:    []int{5, 10, 15, 25},
			Capacities: []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		MST: MSTConfig{
			Topology:  TopologyRandom,
			IDScheme:  IDSchemeIndex,
			Sizes:     []int{8, 16, 32, 64, 128},
			Density:   0.1,
			Seed:      1,
			MinWeight: 1,
			MaxWeight: 100,
		},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig, so omitted
// keys keep their defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig is LoadConfig over an in-memory TOML document.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the driver-level settings. Item values and weights are
// validated by the knapsack package itself when the run starts.
func (c Config) Validate() error {
	for _, capacity := range c.Knapsack.Capacities {
		if capacity < 0 {
			return fmt.Errorf("%w: negative capacity %d", ErrConfig, capacity)
		}
	}
	if c.Knapsack.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max_depth %d", ErrConfig, c.Knapsack.MaxDepth)
	}
	minSize, ok := topologyMinSize[c.MST.topology()]
	if !ok {
		return fmt.Errorf("%w: unknown topology %q", ErrConfig, c.MST.Topology)
	}
	for _, n := range c.MST.Sizes {
		if n < minSize {
			return fmt.Errorf("%w: %s graph size %d < %d", ErrConfig, c.MST.topology(), n, minSize)
		}
	}
	if _, ok := idSchemes[c.MST.idScheme()]; !ok {
		return fmt.Errorf("%w: unknown id_scheme %q", ErrConfig, c.MST.IDScheme)
	}
	if c.MST.Density < 0 || c.MST.Density > 1 {
		return fmt.Errorf("%w: density %g not in [0,1]", ErrConfig, c.MST.Density)
	}
	if c.MST.MinWeight < 0 || c.MST.MaxWeight < c.MST.MinWeight {
		return fmt.Errorf("%w: weight range [%g,%g]", ErrConfig, c.MST.MinWeight, c.MST.MaxWeight)
	}
	if c.MST.IntegerWeights && (c.MST.MinWeight != math.Trunc(c.MST.MinWeight) || c.MST.MaxWeight != math.Trunc(c.MST.MaxWeight)) {
		return fmt.Errorf("%w: integer_weights needs whole bounds, got [%g,%g]", ErrConfig, c.MST.MinWeight, c.MST.MaxWeight)
	}

	return nil
}
