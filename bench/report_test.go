package bench_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opcount/bench"
)

func sampleReport(t *testing.T) bench.Report {
	t.Helper()

	kcfg := bench.DefaultConfig().Knapsack
	kcfg.Capacities = []int{10, 25}
	k, err := bench.RunKnapsack(kcfg)
	require.NoError(t, err)

	m, err := bench.RunMST(bench.MSTConfig{GraphFile: writeGraph(t, "diamond.graph", diamondGraph)})
	require.NoError(t, err)

	return bench.Report{Knapsack: &k, MST: &m}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rep := sampleReport(t)
	var buf bytes.Buffer
	require.NoError(t, bench.WriteJSON(&buf, rep))
	assert.Contains(t, buf.String(), `"capacity": 25`)
	assert.Contains(t, buf.String(), `"strategy": "memoized"`)
	assert.NotContains(t, buf.String(), `"error"`)

	var back bench.Report
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf.Bytes(), &back))
	if diff := cmp.Diff(rep, back); diff != "" {
		t.Fatalf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, sampleReport(t)))
	out := buf.String()

	for _, want := range []string{"Capacity", "Strategy", "recursive", "memoized", "dp", "70", "Graph", "diamond.graph", "prim", "kruskal"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "FAILED")
	assert.Contains(t, out, "Complexity (n items, capacity W, lightest item w):")
	assert.Contains(t, out, "memoized   O(n*W)")
	assert.Less(t, strings.Index(out, "Capacity"), strings.Index(out, "Complexity"), "summary follows the knapsack table")
	assert.Less(t, strings.Index(out, "Complexity"), strings.Index(out, "Graph"), "and precedes the MST table")
}

func TestWriteTable_MarksFailures(t *testing.T) {
	t.Parallel()

	cfg := bench.DefaultConfig().Knapsack
	cfg.Capacities = []int{10}
	cfg.MaxDepth = 1
	k, err := bench.RunKnapsack(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, bench.Report{Knapsack: &k}))
	assert.Contains(t, buf.String(), "FAILED")
	assert.Contains(t, buf.String(), "n/a")
	assert.NotContains(t, buf.String(), "Graph")
}

func TestWriteTable_HostLine(t *testing.T) {
	t.Parallel()

	host := bench.Host{OS: "linux", Arch: "arm64", CPU: "Test CPU", Cores: 4, MemoryBytes: 8 << 30, GoVersion: "go1.23.4"}
	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, bench.Report{Host: &host}))
	assert.Equal(t, "Host: linux/arm64, Test CPU, 4 cores, 8.0 GiB, go1.23.4\n", buf.String())
}
