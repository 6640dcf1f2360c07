package bench

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/opcount/knapsack"
	"github.com/katalvlaran/opcount/prim_kruskal"
)

// Problem labels used in reports and metrics.
const (
	ProblemKnapsack = "knapsack"
	ProblemMST      = "mst"
)

// agreeEpsilon absorbs float summation order differences between strategies.
const agreeEpsilon = 1e-9

// Run is one timed strategy invocation.
type Run struct {
	Strategy   string        `json:"strategy"`
	Value      float64       `json:"value"`
	Operations int           `json:"operations"`
	Duration   time.Duration `json:"duration_ns"`
	// Err is set when the strategy did not produce a value (e.g. recursion exhausted).
	Err string `json:"error,omitempty"`
}

// OK reports whether the run produced a value.
func (r Run) OK() bool { return r.Err == "" }

// KnapsackRow holds every strategy's run at one capacity.
type KnapsackRow struct {
	Capacity int   `json:"capacity"`
	Runs     []Run `json:"runs"`
	// Agree is true when every successful run found the same optimum.
	Agree bool `json:"agree"`
}

// KnapsackReport is the output of RunKnapsack.
type KnapsackReport struct {
	Values  []float64     `json:"values"`
	Weights []int         `json:"weights"`
	Rows    []KnapsackRow `json:"rows"`
}

// MSTRow is one graph run through Prim and Kruskal.
type MSTRow struct {
	// Source is the topology name for generated rows, the file name otherwise.
	Source string `json:"source"`
	// Generated is false for the row parsed from MSTConfig.GraphFile.
	Generated bool `json:"generated"`
	Vertices  int  `json:"vertices"`
	Edges     int  `json:"edges"`
	// Reached is the number of vertices Prim covered from its root.
	Reached  int  `json:"reached"`
	Prim     Run  `json:"prim"`
	Kruskal  Run  `json:"kruskal"`
	Spanning bool `json:"spanning"`
	// Agree is true when both trees have the same total weight.
	Agree bool `json:"agree"`
}

// MSTReport is the output of RunMST.
type MSTReport struct {
	Rows []MSTRow `json:"rows"`
}

// Report bundles both problems; either may be nil when not run.
type Report struct {
	Host     *Host           `json:"host,omitempty"`
	Knapsack *KnapsackReport `json:"knapsack,omitempty"`
	MST      *MSTReport      `json:"mst,omitempty"`
}

// RunKnapsack runs every knapsack strategy at every configured capacity.
// knapsack.ErrRecursionExhausted is recorded on the run and the benchmark
// continues; any other error (invalid items) aborts it.
func RunKnapsack(cfg KnapsackConfig) (KnapsackReport, error) {
	var opts []knapsack.Option
	if cfg.MaxDepth > 0 {
		opts = append(opts, knapsack.WithMaxDepth(cfg.MaxDepth))
	}

	rep := KnapsackReport{
		Values:  cfg.Values,
		Weights: cfg.Weights,
		Rows:    make([]KnapsackRow, 0, len(cfg.Capacities)),
	}
	for _, capacity := range cfg.Capacities {
		row := KnapsackRow{Capacity: capacity, Runs: make([]Run, 0, len(knapsack.Methods))}
		for _, method := range knapsack.Methods {
			start := time.Now()
			value, ops, err := knapsack.Compute(method, cfg.Values, cfg.Weights, capacity, opts...)
			run := Run{Strategy: method, Value: value, Operations: ops, Duration: time.Since(start)}
			switch {
			case errors.Is(err, knapsack.ErrRecursionExhausted):
				run.Value, run.Operations, run.Err = 0, 0, err.Error()
			case err != nil:
				return KnapsackReport{}, fmt.Errorf("capacity %d, %s: %w", capacity, method, err)
			}
			row.Runs = append(row.Runs, run)
		}
		row.Agree = agree(row.Runs)
		rep.Rows = append(rep.Rows, row)
	}

	return rep, nil
}

// agree reports whether all successful runs share one value.
func agree(runs []Run) bool {
	first := true
	var want float64
	for _, r := range runs {
		if !r.OK() {
			continue
		}
		if first {
			want, first = r.Value, false
			continue
		}
		if math.Abs(r.Value-want) > agreeEpsilon {
			return false
		}
	}

	return !first
}

// RunMST builds one graph of the configured topology per size, seeded with
// Seed+size, and runs Prim (from the smallest vertex ID) and Kruskal on it.
// When GraphFile is set, that graph is parsed and run as a final row.
func RunMST(cfg MSTConfig) (MSTReport, error) {
	rep := MSTReport{Rows: make([]MSTRow, 0, len(cfg.Sizes)+1)}
	for _, n := range cfg.Sizes {
		g, err := cfg.buildGraph(n)
		if err != nil {
			return MSTReport{}, fmt.Errorf("%s size %d: %w", cfg.topology(), n, err)
		}
		row, err := runGraph(cfg.topology(), g)
		if err != nil {
			return MSTReport{}, fmt.Errorf("%s size %d: %w", cfg.topology(), n, err)
		}
		row.Generated = true
		rep.Rows = append(rep.Rows, row)
	}

	if cfg.GraphFile != "" {
		g, err := loadGraph(cfg.GraphFile)
		if err != nil {
			return MSTReport{}, err
		}
		row, err := runGraph(filepath.Base(cfg.GraphFile), g)
		if err != nil {
			return MSTReport{}, fmt.Errorf("%s: %w", cfg.GraphFile, err)
		}
		rep.Rows = append(rep.Rows, row)
	}

	return rep, nil
}

// loadGraph opens and parses a graph file.
func loadGraph(path string) (prim_kruskal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	g, err := prim_kruskal.ParseGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// runGraph times Prim (from the smallest vertex) and Kruskal on g.
func runGraph(source string, g prim_kruskal.Graph) (MSTRow, error) {
	row := MSTRow{Source: source, Vertices: len(g), Edges: g.EdgeCount() / 2}

	start := time.Now()
	p, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	if err != nil {
		return MSTRow{}, err
	}
	row.Prim = treeRun(prim_kruskal.MethodPrim, p, time.Since(start))

	start = time.Now()
	k, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	if err != nil {
		return MSTRow{}, err
	}
	row.Kruskal = treeRun(prim_kruskal.MethodKruskal, k, time.Since(start))

	row.Reached = p.Visited
	row.Spanning = p.Spanning
	row.Agree = p.Spanning && k.Spanning && math.Abs(p.Total-k.Total) <= agreeEpsilon*math.Max(1, p.Total)

	return row, nil
}

func treeRun(method string, t prim_kruskal.Tree, d time.Duration) Run {
	r := Run{Strategy: method, Value: t.Total, Operations: t.Operations, Duration: d}
	if err := t.Err(); err != nil {
		r.Err = err.Error()
	}

	return r
}
