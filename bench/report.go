package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = cellStyle.Foreground(lipgloss.Color("196"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// statusFailed marks a run without a value, or a row whose strategies disagree.
const statusFailed = "FAILED"

// knapsackComplexity is printed under the knapsack table.
var knapsackComplexity = []string{
	"Complexity (n items, capacity W, lightest item w):",
	"  recursive  O(n^(W/w))  recomputes every shared sub-capacity",
	"  memoized   O(n*W)      each sub-capacity is expanded once",
	"  dp         O(n*W)      iterative, exactly n*W operations",
}

// WriteTable renders the host line, if known, and each problem present in
// rep as a bordered summary table. The knapsack table is followed by a
// complexity summary of the three strategies.
func WriteTable(w io.Writer, rep Report) error {
	if rep.Host != nil {
		if _, err := fmt.Fprintln(w, "Host:", rep.Host); err != nil {
			return err
		}
	}
	if rep.Knapsack != nil {
		if _, err := fmt.Fprintln(w, knapsackTable(*rep.Knapsack)); err != nil {
			return err
		}
		for _, line := range knapsackComplexity {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if rep.MST != nil {
		if _, err := fmt.Fprintln(w, mstTable(*rep.MST)); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

func knapsackTable(rep KnapsackReport) *table.Table {
	rows := make([][]string, 0, len(rep.Rows)*3)
	for _, row := range rep.Rows {
		for _, r := range row.Runs {
			rows = append(rows, []string{
				strconv.Itoa(row.Capacity),
				r.Strategy,
				valueCell(r),
				opsCell(r),
				durationCell(r.Duration),
				agreeCell(row.Agree),
			})
		}
	}

	return newTable(rows, "Capacity", "Strategy", "Value", "Operations", "Time", "Agree")
}

func mstTable(rep MSTReport) *table.Table {
	rows := make([][]string, 0, len(rep.Rows)*2)
	for _, row := range rep.Rows {
		for _, r := range []Run{row.Prim, row.Kruskal} {
			rows = append(rows, []string{
				row.Source,
				strconv.Itoa(row.Vertices),
				strconv.Itoa(row.Edges),
				r.Strategy,
				valueCell(r),
				opsCell(r),
				durationCell(r.Duration),
				agreeCell(row.Agree),
			})
		}
	}

	return newTable(rows, "Graph", "V", "E", "Strategy", "Cost", "Operations", "Time", "Agree")
}

func newTable(rows [][]string, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) && rows[row][col] == statusFailed {
				return failStyle
			}
			return cellStyle
		})
}

func valueCell(r Run) string {
	if !r.OK() {
		return statusFailed
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

func opsCell(r Run) string {
	if !r.OK() && r.Operations == 0 {
		return "n/a"
	}
	return strconv.Itoa(r.Operations)
}

func durationCell(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func agreeCell(ok bool) string {
	if ok {
		return "yes"
	}
	return statusFailed
}
