package summary

import (
	"errors"
	"sort"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// ErrEmptyResult is the soft failure for a view with zero records. Callers
// render a warning instead of aggregates; no partial report is produced.
var ErrEmptyResult = errors.New("no records match the current filter selection")

const DefaultTopCustomers = 5

// Summarize computes the aggregates for one filter state. Pure function of
// the view. Ties on equal summed sales break by name ascending, both for the
// top customers list and the category summary.
func Summarize(view domain.FilteredView, topN int) (*domain.SummaryReport, error) {
	if len(view.Records) == 0 {
		return nil, ErrEmptyResult
	}
	if topN <= 0 {
		topN = DefaultTopCustomers
	}

	report := &domain.SummaryReport{}

	customerSales := make(map[string]decimal.Decimal)
	categorySales := make(map[string]decimal.Decimal)
	categoryProfit := make(map[string]decimal.Decimal)
	dailySales := make(map[time.Time]decimal.Decimal)

	for _, r := range view.Records {
		report.TotalSales = report.TotalSales.Add(r.Sales)
		report.TotalProfit = report.TotalProfit.Add(r.Profit)

		// Grouping keys are non-null per the load invariants; empty keys are
		// excluded anyway.
		if r.CustomerName != "" {
			customerSales[r.CustomerName] = customerSales[r.CustomerName].Add(r.Sales)
		}
		if r.Category != "" {
			categorySales[r.Category] = categorySales[r.Category].Add(r.Sales)
			categoryProfit[r.Category] = categoryProfit[r.Category].Add(r.Profit)
		}
		if !r.OrderDate.IsZero() {
			dailySales[r.OrderDate] = dailySales[r.OrderDate].Add(r.Sales)
		}
	}

	report.TopCustomers = topCustomers(customerSales, topN)
	report.Categories = categorySummaries(categorySales, categoryProfit)
	report.SalesOverTime = salesOverTime(dailySales)

	return report, nil
}

func topCustomers(sales map[string]decimal.Decimal, topN int) []domain.CustomerSales {
	customers := make([]domain.CustomerSales, 0, len(sales))
	for name, total := range sales {
		customers = append(customers, domain.CustomerSales{CustomerName: name, Sales: total})
	}
	sort.Slice(customers, func(i, j int) bool {
		if c := customers[i].Sales.Cmp(customers[j].Sales); c != 0 {
			return c > 0
		}
		return customers[i].CustomerName < customers[j].CustomerName
	})
	if len(customers) > topN {
		customers = customers[:topN]
	}
	return customers
}

func categorySummaries(sales, profit map[string]decimal.Decimal) []domain.CategorySummary {
	categories := make([]domain.CategorySummary, 0, len(sales))
	for name, total := range sales {
		categories = append(categories, domain.CategorySummary{
			Category: name,
			Sales:    total,
			Profit:   profit[name],
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := categories[i].Sales.Cmp(categories[j].Sales); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

func salesOverTime(daily map[time.Time]decimal.Decimal) []domain.SalesPoint {
	points := make([]domain.SalesPoint, 0, len(daily))
	for date, total := range daily {
		points = append(points, domain.SalesPoint{Date: date, Sales: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
