package charts

import (
	"cost-intelligence-service/internal/domain"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart names served by the dashboard.
const (
	Route       = "route"
	Distance    = "distance"
	Composition = "composition"
	Delay       = "delay"
)

// Names lists every chart in dashboard order.
var Names = []string{Route, Distance, Composition, Delay}

const (
	defaultWidth  = 800
	defaultHeight = 420
)

var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
}

// PNGRenderer draws report charts with go-chart. Implements ports.ChartRenderer.
type PNGRenderer struct {
	Width  int
	Height int
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: defaultWidth, Height: defaultHeight}
}

func (r *PNGRenderer) ContentType() string { return "image/png" }

func (r *PNGRenderer) Names() []string { return Names }

// Render writes the named chart for rep to w.
func (r *PNGRenderer) Render(w io.Writer, name string, rep *domain.Report) error {
	if rep == nil {
		return fmt.Errorf("render %s: %w", name, domain.ErrNoChartData)
	}

	var err error
	switch name {
	case Route:
		err = r.routeBars(w, rep.CostByRoute)
	case Distance:
		err = r.distanceLine(w, rep.CostByDistance)
	case Composition:
		err = r.compositionPie(w, rep.Composition)
	case Delay:
		err = r.delayScatter(w, rep.DelayVsCost)
	default:
		return fmt.Errorf("render %q: %w", name, domain.ErrUnknownChart)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (r *PNGRenderer) routeBars(w io.Writer, rows []domain.CategoryValue) error {
	if len(rows) == 0 {
		return domain.ErrNoChartData
	}

	bars := make([]chart.Value, len(rows))
	ys := make([]float64, len(rows))
	for i, row := range rows {
		ys[i] = row.Value.InexactFloat64()
		bars[i] = chart.Value{
			Label: row.Label,
			Value: ys[i],
			Style: chart.Style{FillColor: palette[0], StrokeColor: palette[0]},
		}
	}

	barWidth := (r.Width - 120) / (2 * len(bars))
	barWidth = max(4, min(barWidth, 60))

	bc := chart.BarChart{
		Title:    "Cost by Route",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{Name: "Total Cost (INR)", Range: paddedRange(append(ys, 0))},
		Bars:  bars,
	}
	return bc.Render(chart.PNG, w)
}

func (r *PNGRenderer) distanceLine(w io.Writer, points []domain.DistancePoint) error {
	if len(points) == 0 {
		return domain.ErrNoChartData
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.DistanceKM.InexactFloat64()
		ys[i] = p.MeanTotalCost.InexactFloat64()
	}

	ch := chart.Chart{
		Title:  "Distance vs Mean Total Cost",
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: "Distance (KM)", Range: paddedRange(xs)},
		YAxis: chart.YAxis{Name: "Mean Total Cost (INR)", Range: paddedRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Mean total cost",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: palette[0],
					StrokeWidth: 2,
					DotColor:    palette[0],
					DotWidth:    3,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}

func (r *PNGRenderer) compositionPie(w io.Writer, rows []domain.CategoryValue) error {
	total := decimal.Zero
	values := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		if !row.Value.IsPositive() {
			continue
		}
		total = total.Add(row.Value)
		values = append(values, chart.Value{
			Label: row.Label,
			Value: row.Value.InexactFloat64(),
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}
	if len(values) == 0 || !total.IsPositive() {
		return domain.ErrNoChartData
	}

	pc := chart.PieChart{
		Title:  "Cost Composition",
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	return pc.Render(chart.PNG, w)
}

func (r *PNGRenderer) delayScatter(w io.Writer, points []domain.ScatterPoint) error {
	if len(points) == 0 {
		return domain.ErrNoChartData
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.TrafficDelayMinutes.InexactFloat64()
		ys[i] = p.TotalCost.InexactFloat64()
	}

	ch := chart.Chart{
		Title:  "Traffic Delay vs Total Cost",
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: "Traffic Delay (min)", Range: paddedRange(xs)},
		YAxis: chart.YAxis{Name: "Total Cost (INR)", Range: paddedRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Orders",
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(palette[3]),
			},
		},
	}
	return ch.Render(chart.PNG, w)
}

// pointStyle draws dots without a connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// paddedRange returns a range enclosing vs with a 5% margin. A flat series
// still gets a non-zero span so go-chart accepts it.
func paddedRange(vs []float64) *chart.ContinuousRange {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
