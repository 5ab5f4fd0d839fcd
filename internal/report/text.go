package report

import (
	"cost-intelligence-service/internal/domain"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
)

// Table output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Writer renders reports for a terminal.
type Writer struct {
	Out    io.Writer
	Format string
}

func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case "":
		format = FormatTable
	case "md":
		format = FormatMarkdown
	case FormatTable, FormatMarkdown, FormatCSV:
	default:
		return nil, fmt.Errorf("report: unknown format %q (want table, markdown or csv)", format)
	}
	return &Writer{Out: out, Format: format}, nil
}

// Summary writes the KPI block followed by the grouped cost tables.
func (w *Writer) Summary(rep *domain.Report) {
	w.heading("Key Performance Indicators")
	kpi := w.newTable()
	kpi.AppendHeader(table.Row{"Metric", "Value"})
	kpi.AppendRows([]table.Row{
		{"Total Operational Cost", FormatINR(rep.KPIs.TotalCost)},
		{"Total Orders", FormatCount(rep.KPIs.OrderCount)},
		{"Average Cost per KM", w.meanCostPerKM(rep.KPIs)},
		{"Incomplete Orders", FormatCount(rep.KPIs.IncompleteOrders)},
		{"Orders Without Cost per KM", FormatCount(rep.KPIs.UndefinedCostPerDistance)},
	})
	w.render(kpi)

	w.heading("Total Cost by Route")
	routes := w.newTable()
	routes.AppendHeader(table.Row{"Route", "Total Cost"})
	for _, r := range rep.CostByRoute {
		routes.AppendRow(table.Row{r.Label, FormatINR(r.Value)})
	}
	w.render(routes)

	w.heading("Cost vs Distance")
	dist := w.newTable()
	dist.AppendHeader(table.Row{"Distance (KM)", "Mean Total Cost"})
	for _, p := range rep.CostByDistance {
		dist.AppendRow(table.Row{p.DistanceKM.String(), FormatINR(p.MeanTotalCost)})
	}
	w.render(dist)

	w.heading("Cost Composition")
	comp := w.newTable()
	comp.AppendHeader(table.Row{"Component", "Total", "Share"})
	total := decimal.Zero
	for _, c := range rep.Composition {
		total = total.Add(c.Value)
	}
	for _, c := range rep.Composition {
		share := "-"
		if total.IsPositive() {
			share = c.Value.Div(total).Shift(2).StringFixed(1) + "%"
		}
		comp.AppendRow(table.Row{Label(c.Label), FormatINR(c.Value), share})
	}
	w.render(comp)
}

// Leakage writes the threshold and the orders above it.
func (w *Writer) Leakage(rep *domain.Report) {
	w.heading("High Cost Leakage Orders")
	if rep.HasLeakageThreshold {
		fmt.Fprintf(w.Out, "Threshold (mean cost per KM): %s\n", FormatRatio(rep.LeakageThreshold))
	} else {
		fmt.Fprintln(w.Out, "Threshold (mean cost per KM): n/a")
	}

	t := w.newTable()
	t.AppendHeader(table.Row{domain.ColOrderID, domain.ColRoute, domain.ColCostPerKM, domain.ColTrafficDelay})
	for _, l := range rep.Leakage {
		t.AppendRow(table.Row{l.OrderID, l.Route, FormatRatio(l.CostPerKM), l.TrafficDelayMinutes.String()})
	}
	w.render(t)
	fmt.Fprintf(w.Out, "(%d orders)\n", len(rep.Leakage))
}

// Filters writes the values available to the priority and category filters.
func (w *Writer) Filters(priorities, categories []string) {
	t := w.newTable()
	t.AppendHeader(table.Row{"Filter", "Values"})
	t.AppendRow(table.Row{"Priority", strings.Join(priorities, ", ")})
	t.AppendRow(table.Row{"Product Category", strings.Join(categories, ", ")})
	w.render(t)
}

func (w *Writer) meanCostPerKM(k domain.KPIs) string {
	if !k.HasMeanCostPerDistance {
		return "n/a"
	}
	return FormatRatio(k.MeanCostPerDistance)
}

func (w *Writer) heading(title string) {
	if w.Format == FormatCSV {
		return
	}
	if w.Format == FormatMarkdown {
		fmt.Fprintf(w.Out, "\n## %s\n\n", title)
		return
	}
	fmt.Fprintf(w.Out, "\n%s\n", title)
}

func (w *Writer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w.Out)
	t.SetStyle(table.StyleLight)
	return t
}

func (w *Writer) render(t table.Writer) {
	switch w.Format {
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	default:
		t.Render()
	}
}
