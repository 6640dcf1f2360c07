// Command opbench benchmarks the instrumented knapsack and MST algorithms
// and reports operation counts, timings, metrics and charts.
//
//	opbench -config bench.toml -plot-dir plots -metrics opcount.prom
//	opbench -problem mst -graph diamond.graph -json
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/opcount/bench"
)

func main() {
	var (
		configFile  string
		problem     string
		graphFile   string
		topology    string
		jsonOutput  bool
		outputFile  string
		plotDir     string
		metricsFile string
	)

	flag.StringVar(&configFile, "config", "", "Path to TOML benchmark config (defaults when empty)")
	flag.StringVar(&problem, "problem", "all", "Problem to run: all, knapsack or mst")
	flag.StringVar(&graphFile, "graph", "", "Graph file to run as an extra MST row (overrides mst.graph_file)")
	flag.StringVar(&topology, "topology", "", "Generated graph topology: random, path, cycle, star or complete (overrides mst.topology)")
	flag.BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	flag.StringVar(&outputFile, "out", "", "Write output to file instead of stdout")
	flag.StringVar(&plotDir, "plot-dir", "", "Write PNG charts into this directory")
	flag.StringVar(&metricsFile, "metrics", "", "Write Prometheus metrics to this file")
	flag.Parse()

	cfg := bench.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = bench.LoadConfig(configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if graphFile != "" {
		cfg.MST.GraphFile = graphFile
	}
	if topology != "" {
		cfg.MST.Topology = topology
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -topology: %v", err)
		}
	}

	runKnapsack, runMST := problem == "all" || problem == bench.ProblemKnapsack, problem == "all" || problem == bench.ProblemMST
	if !runKnapsack && !runMST {
		log.Fatalf("Unknown problem %q (want all, knapsack or mst)", problem)
	}

	var rep bench.Report
	if host, err := bench.DetectHost(); err != nil {
		log.Printf("host detection failed, continuing without it: %v", err)
	} else {
		rep.Host = &host
	}
	if runKnapsack {
		log.Printf("knapsack: %d capacities, %d items", len(cfg.Knapsack.Capacities), len(cfg.Knapsack.Values))
		k, err := bench.RunKnapsack(cfg.Knapsack)
		if err != nil {
			log.Fatalf("Knapsack benchmark failed: %v", err)
		}
		for _, row := range k.Rows {
			if !row.Agree {
				log.Printf("knapsack: strategies disagree at capacity %d", row.Capacity)
			}
		}
		rep.Knapsack = &k
	}
	if runMST {
		log.Printf("mst: %d %s graphs, %s IDs", len(cfg.MST.Sizes), cfg.MST.Topology, cfg.MST.IDScheme)
		m, err := bench.RunMST(cfg.MST)
		if err != nil {
			log.Fatalf("MST benchmark failed: %v", err)
		}
		for _, row := range m.Rows {
			if !row.Spanning {
				log.Printf("mst: %s is disconnected (%d of %d vertices reached)", row.Source, row.Reached, row.Vertices)
			}
		}
		rep.MST = &m
	}

	var buf bytes.Buffer
	var err error
	if jsonOutput {
		err = bench.WriteJSON(&buf, rep)
	} else {
		err = bench.WriteTable(&buf, rep)
	}
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write report to %s: %v", outputFile, err)
		}
		fmt.Printf("Report written to %s\n", outputFile)
	} else {
		fmt.Print(buf.String())
	}

	if metricsFile != "" {
		metrics := bench.NewMetrics()
		metrics.Observe(rep)
		if err := metrics.WriteFile(metricsFile); err != nil {
			log.Fatalf("Failed to write metrics to %s: %v", metricsFile, err)
		}
		log.Printf("metrics written to %s", metricsFile)
	}

	if plotDir != "" {
		writePlots(rep, plotDir)
	}
}

func writePlots(rep bench.Report, dir string) {
	if rep.Knapsack != nil {
		logPlots(bench.ProblemKnapsack)(bench.PlotKnapsack(*rep.Knapsack, dir))
		path, err := bench.PlotKnapsackBars(*rep.Knapsack, dir)
		logPlots(bench.ProblemKnapsack)([]string{path}, err)
	}
	if rep.MST != nil {
		logPlots(bench.ProblemMST)(bench.PlotMST(*rep.MST, dir))
	}
}

// logPlots reports written charts; an empty series is skipped, anything else is fatal.
func logPlots(problem string) func([]string, error) {
	return func(paths []string, err error) {
		switch {
		case errors.Is(err, bench.ErrNothingToPlot):
			log.Printf("%s: no data to chart", problem)
			return
		case err != nil:
			log.Fatalf("Failed to plot %s: %v", problem, err)
		}
		for _, p := range paths {
			log.Printf("chart written to %s", p)
		}
	}
}
