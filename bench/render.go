package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

var header = table.Row{"Case", "Solver", "Value", "Mean", "StdDev", "% of slowest", "Nodes", "Solution"}

// Render writes one table holding every row of reports. Cases are separated
// by a rule in the ASCII format.
func Render(w io.Writer, reports []CaseReport, f Format) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, WidthMax: 48},
	})

	for i, rep := range reports {
		if i > 0 {
			tw.AppendSeparator()
		}
		name := fmt.Sprintf("%s (%d)", rep.Name, rep.Size)
		for _, row := range rep.Rows {
			tw.AppendRow(formatRow(name, row))
		}
	}

	var out string
	switch f {
	case FormatTable:
		out = tw.Render()
	case FormatMarkdown:
		out = tw.RenderMarkdown()
	case FormatCSV:
		out = tw.RenderCSV()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	_, err := fmt.Fprintln(w, out)

	return err
}

func formatRow(name string, row Row) table.Row {
	if row.Skipped {
		return table.Row{name, row.Solver, "-", "-", "-", "-", "-", "skipped: " + row.Note}
	}
	value := strconv.FormatFloat(row.Value, 'f', 2, 64)
	solution := row.Solution
	if row.Note != "" {
		value, solution = "-", row.Note
	}
	nodes := "-"
	if row.Stats != nil {
		nodes = strconv.Itoa(row.Stats.Visited)
	}

	return table.Row{
		name,
		row.Solver,
		value,
		roundDuration(row.Mean).String(),
		roundDuration(row.StdDev).String(),
		strconv.FormatFloat(row.PercentOfSlowest, 'f', 1, 64),
		nodes,
		solution,
	}
}

// RenderHistogram plots the run-time distribution of one solver of rep.
// It needs at least one timed run.
func RenderHistogram(w io.Writer, rep CaseReport, solver string, bins int) error {
	row, ok := rep.Row(solver)
	if !ok || len(row.Times) == 0 {
		return fmt.Errorf("bench: no timings for %s in %q", solver, rep.Name)
	}
	if _, err := fmt.Fprintf(w, "%s: %s (%d runs)\n", rep.Name, solver, len(row.Times)); err != nil {
		return err
	}
	data := lo.Map(row.Times, func(d time.Duration, _ int) float64 { return float64(d) })
	h := histogram.Hist(max(bins, 1), data)

	return histogram.Fprintf(w, h, histogram.Linear(40), func(v float64) string {
		return roundDuration(time.Duration(v)).String()
	})
}

// roundDuration trims durations for display.
func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d.Round(100 * time.Nanosecond)
	}
}
