package bench

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNothingToPlot indicates a report without a single plottable point.
var ErrNothingToPlot = errors.New("bench: nothing to plot")

// Output file names written by PlotKnapsack, PlotKnapsackBars and PlotMST.
const (
	KnapsackOpsPlot        = "knapsack_operations.png"
	KnapsackTimePlot       = "knapsack_time.png"
	KnapsackEfficiencyPlot = "knapsack_efficiency.png"
	KnapsackBarsPlot       = "knapsack_bars.png"
	MSTOpsPlot             = "mst_operations.png"
	MSTTimePlot            = "mst_time.png"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
	barWidth   = vg.Length(40) // 40pt
)

// minPlotSeconds keeps sub-resolution timings visible on a log axis.
const minPlotSeconds = float64(time.Nanosecond) / float64(time.Second)

// series is one named line: x → y for the runs that succeeded.
type series struct {
	name string
	xys  plotter.XYs
}

// PlotKnapsack writes operations-vs-capacity and time-vs-capacity PNGs
// (log Y), one line per strategy, plus an operations-vs-time scatter on
// log-log axes. Failed runs and zero-op runs are left out. Returns the
// written paths.
func PlotKnapsack(rep KnapsackReport, dir string) ([]string, error) {
	var order []string
	ops := map[string]*series{}
	secs := map[string]*series{}
	eff := map[string]*series{}
	for _, row := range rep.Rows {
		for _, r := range row.Runs {
			if _, ok := ops[r.Strategy]; !ok {
				order = append(order, r.Strategy)
				ops[r.Strategy] = &series{name: r.Strategy}
				secs[r.Strategy] = &series{name: r.Strategy}
				eff[r.Strategy] = &series{name: r.Strategy}
			}
			if !r.OK() {
				continue
			}
			addPoint(ops[r.Strategy], float64(row.Capacity), float64(r.Operations))
			addPoint(secs[r.Strategy], float64(row.Capacity), seconds(r.Duration))
			if r.Operations > 0 {
				addPoint(eff[r.Strategy], float64(r.Operations), seconds(r.Duration))
			}
		}
	}

	return writePlots(dir, []plotSpec{
		{file: KnapsackOpsPlot, title: "Unbounded knapsack: operations", x: "Capacity", y: "Operations (log)", lines: collect(order, ops)},
		{file: KnapsackTimePlot, title: "Unbounded knapsack: execution time", x: "Capacity", y: "Seconds (log)", lines: collect(order, secs)},
		{file: KnapsackEfficiencyPlot, title: "Unbounded knapsack: operations vs time", x: "Operations (log)", y: "Seconds (log)", lines: collect(order, eff), scatter: true},
	})
}

// PlotKnapsackBars writes one PNG with two bar charts for the middle row of
// rep: execution time, and operations on a log10 scale. Each bar carries its
// value; a failed run gets an empty bar labelled FAILED.
func PlotKnapsackBars(rep KnapsackReport, dir string) (string, error) {
	if len(rep.Rows) == 0 {
		return "", ErrNothingToPlot
	}
	row := rep.Rows[len(rep.Rows)/2]

	names := make([]string, len(row.Runs))
	secs := make([]float64, len(row.Runs))
	opsLog := make([]float64, len(row.Runs))
	secLabels := make([]string, len(row.Runs))
	opsLabels := make([]string, len(row.Runs))
	for i, r := range row.Runs {
		names[i] = r.Strategy
		if !r.OK() {
			secLabels[i], opsLabels[i] = statusFailed, statusFailed
			continue
		}
		secs[i] = r.Duration.Seconds()
		secLabels[i] = strconv.FormatFloat(secs[i], 'f', 6, 64) + "s"
		opsLabels[i] = strconv.Itoa(r.Operations)
		if r.Operations > 0 {
			opsLog[i] = math.Log10(float64(r.Operations))
		}
	}

	title := fmt.Sprintf("(capacity %d)", row.Capacity)
	timePlot, err := barPlot("Execution time "+title, "Seconds", names, secs, secLabels)
	if err != nil {
		return "", err
	}
	opsPlot, err := barPlot("Operations "+title, "log10(operations)", names, opsLog, opsLabels)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("plot dir: %w", err)
	}
	path := filepath.Join(dir, KnapsackBarsPlot)
	if err := saveTiles(path, [][]*plot.Plot{{timePlot, opsPlot}}, 2*plotWidth, plotHeight); err != nil {
		return "", fmt.Errorf("%s: %w", KnapsackBarsPlot, err)
	}

	return path, nil
}

// barPlot draws one colored bar per name with its label on top.
func barPlot(title, y string, names []string, heights []float64, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = y
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(heights))
	for i, h := range heights {
		bars, err := plotter.NewBarChart(plotter.Values{h}, barWidth)
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(i)
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		xys[i] = plotter.XY{X: float64(i), Y: h}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
	}
	p.Add(l)
	p.NominalX(names...)

	return p, nil
}

// saveTiles aligns plots on a grid and writes them as a single PNG.
func saveTiles(path string, plots [][]*plot.Plot, w, h vg.Length) error {
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			p.Draw(canvases[i][j])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return err
	}

	return f.Close()
}

// PlotMST writes operations-vs-|V| and time-vs-|V| PNGs for the generated rows
// of rep, one line each for Prim and Kruskal.
func PlotMST(rep MSTReport, dir string) ([]string, error) {
	var (
		primOps  = &series{name: "prim"}
		kruskOps = &series{name: "kruskal"}
		primSec  = &series{name: "prim"}
		kruskSec = &series{name: "kruskal"}
	)
	for _, row := range rep.Rows {
		if !row.Generated {
			continue
		}
		x := float64(row.Vertices)
		addPoint(primOps, x, float64(row.Prim.Operations))
		addPoint(kruskOps, x, float64(row.Kruskal.Operations))
		addPoint(primSec, x, seconds(row.Prim.Duration))
		addPoint(kruskSec, x, seconds(row.Kruskal.Duration))
	}

	return writePlots(dir, []plotSpec{
		{file: MSTOpsPlot, title: "Minimum spanning tree: operations", x: "Vertices", y: "Operations (log)", lines: []*series{primOps, kruskOps}},
		{file: MSTTimePlot, title: "Minimum spanning tree: execution time", x: "Vertices", y: "Seconds (log)", lines: []*series{primSec, kruskSec}},
	})
}

// plotSpec is one chart file. Scatter charts use log scales on both axes.
type plotSpec struct {
	file, title, x, y string
	lines             []*series
	scatter           bool
}

func writePlots(dir string, specs []plotSpec) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("plot dir: %w", err)
	}
	paths := make([]string, 0, len(specs))
	for _, s := range specs {
		path := filepath.Join(dir, s.file)
		if err := savePlot(path, s); err != nil {
			return paths, fmt.Errorf("%s: %w", s.file, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func savePlot(path string, s plotSpec) error {
	var lines []*series
	for _, l := range s.lines {
		if len(l.xys) > 0 {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = s.title
	p.X.Label.Text = s.x
	p.Y.Label.Text = s.y
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if s.scatter {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		for i, l := range lines {
			sc, err := plotter.NewScatter(l.xys)
			if err != nil {
				return err
			}
			sc.GlyphStyle.Color = plotutil.Color(i)
			sc.GlyphStyle.Shape = plotutil.Shape(i)
			sc.GlyphStyle.Radius = vg.Points(4)
			p.Add(sc)
			p.Legend.Add(l.name, sc)
		}
	} else {
		args := make([]interface{}, 0, 2*len(lines))
		for _, l := range lines {
			args = append(args, l.name, l.xys)
		}
		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return err
		}
	}

	return p.Save(plotWidth, plotHeight, path)
}

// addPoint appends (x, y) unless y cannot sit on a log axis.
func addPoint(s *series, x, y float64) {
	if y <= 0 {
		return
	}
	s.xys = append(s.xys, plotter.XY{X: x, Y: y})
}

func seconds(d time.Duration) float64 {
	if s := d.Seconds(); s > minPlotSeconds {
		return s
	}
	return minPlotSeconds
}

func collect(order []string, m map[string]*series) []*series {
	out := make([]*series, 0, len(order))
	for _, name := range order {
		out = append(out, m[name])
	}
	return out
}
