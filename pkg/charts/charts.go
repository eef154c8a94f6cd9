// Package charts renders the summary aggregates as PNG images for the web
// presenter.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	TopCustomersChart  = "top-customers"
	CategoriesChart    = "categories"
	SalesOverTimeChart = "sales-over-time"
)

// Names lists the supported chart identifiers.
func Names() []string {
	return []string{TopCustomersChart, CategoriesChart, SalesOverTimeChart}
}

// Render produces the named chart from the report. Unknown names fail.
func Render(name string, report *domain.SummaryReport) ([]byte, error) {
	switch name {
	case TopCustomersChart:
		return TopCustomers(report)
	case CategoriesChart:
		return Categories(report)
	case SalesOverTimeChart:
		return SalesOverTime(report)
	default:
		return nil, fmt.Errorf("unknown chart %q, supported charts: %v", name, Names())
	}
}

// TopCustomers renders a bar per customer, ordered as in the report.
func TopCustomers(report *domain.SummaryReport) ([]byte, error) {
	bars := make([]chart.Value, 0, len(report.TopCustomers))
	for _, c := range report.TopCustomers {
		bars = append(bars, chart.Value{
			Label: c.CustomerName,
			Value: c.Sales.InexactFloat64(),
		})
	}
	return renderBars("Top Customers by Sales", bars)
}

// Categories renders a sales and a profit bar per category.
func Categories(report *domain.SummaryReport) ([]byte, error) {
	bars := make([]chart.Value, 0, len(report.Categories)*2)
	for _, c := range report.Categories {
		bars = append(bars,
			chart.Value{Label: c.Category + " Sales", Value: c.Sales.InexactFloat64()},
			chart.Value{Label: c.Category + " Profit", Value: c.Profit.InexactFloat64()},
		)
	}
	return renderBars("Sales vs Profit by Category", bars)
}

// SalesOverTime renders the per-date sales sums as a time series line.
func SalesOverTime(report *domain.SummaryReport) ([]byte, error) {
	if len(report.SalesOverTime) == 0 {
		return nil, fmt.Errorf("no datapoints to render")
	}

	times := make([]time.Time, 0, len(report.SalesOverTime))
	values := make([]float64, 0, len(report.SalesOverTime))
	for _, p := range report.SalesOverTime {
		times = append(times, p.Date)
		values = append(values, p.Sales.InexactFloat64())
	}

	// go-chart needs at least two X values; pad a single datapoint.
	if len(times) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		values = append(values, values[0])
	}

	graph := chart.Chart{
		Title:  "Sales Trend Over Time",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Sales",
				XValues: times,
				YValues: values,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBars(title string, bars []chart.Value) ([]byte, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no datapoints to render")
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
