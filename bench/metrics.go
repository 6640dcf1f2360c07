package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports benchmark results in the Prometheus text format.
// Each Metrics owns its registry, so several runs never collide.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.GaugeVec
}

// metricLabels are shared by every series.
var metricLabels = []string{"problem", "strategy", "size"}

// NewMetrics creates the opcount_operations_total counter and the
// opcount_duration_seconds gauge on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		// operations counts counted steps per strategy and input size
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opcount_operations_total",
				Help: "Counted operations per problem, strategy and input size",
			},
			metricLabels,
		),
		// duration is the wall-clock time of the last run
		duration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opcount_duration_seconds",
				Help: "Wall-clock duration of the last run per problem, strategy and input size",
			},
			metricLabels,
		),
	}
	m.registry.MustRegister(m.operations, m.duration)

	return m
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveKnapsack records every successful run; size is the capacity.
func (m *Metrics) ObserveKnapsack(rep KnapsackReport) {
	for _, row := range rep.Rows {
		for _, r := range row.Runs {
			m.observe(ProblemKnapsack, r, row.Capacity)
		}
	}
}

// ObserveMST records Prim and Kruskal for every row; size is |V|.
// Runs on disconnected graphs still carry valid operation counts.
func (m *Metrics) ObserveMST(rep MSTReport) {
	for _, row := range rep.Rows {
		m.observeAlways(ProblemMST, row.Prim, row.Vertices)
		m.observeAlways(ProblemMST, row.Kruskal, row.Vertices)
	}
}

// Observe records both problems of rep that are present.
func (m *Metrics) Observe(rep Report) {
	if rep.Knapsack != nil {
		m.ObserveKnapsack(*rep.Knapsack)
	}
	if rep.MST != nil {
		m.ObserveMST(*rep.MST)
	}
}

// WriteFile writes the registry to path in the text exposition format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(problem string, r Run, size int) {
	if !r.OK() {
		return
	}
	m.observeAlways(problem, r, size)
}

func (m *Metrics) observeAlways(problem string, r Run, size int) {
	labels := prometheus.Labels{"problem": problem, "strategy": r.Strategy, "size": strconv.Itoa(size)}
	m.operations.With(labels).Add(float64(r.Operations))
	m.duration.With(labels).Set(r.Duration.Seconds())
}
