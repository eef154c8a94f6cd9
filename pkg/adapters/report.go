package adapters

import (
	"github.com/de-tools/retail-atlas/pkg/models/api"
	"github.com/de-tools/retail-atlas/pkg/models/domain"
)

func MapFilterOptionsDomainToApi(opts domain.FilterOptions) api.FilterOptions {
	return api.FilterOptions{
		Regions:       opts.Regions,
		Categories:    opts.Categories,
		SubCategories: opts.SubCategories,
	}
}

func MapSummaryReportDomainToApi(report *domain.SummaryReport) *api.SummaryReport {
	apiReport := &api.SummaryReport{
		TotalSales:    report.TotalSales,
		TotalProfit:   report.TotalProfit,
		TopCustomers:  []api.CustomerSales{},
		Categories:    []api.CategorySummary{},
		SalesOverTime: []api.SalesPoint{},
	}

	for _, c := range report.TopCustomers {
		apiReport.TopCustomers = append(apiReport.TopCustomers, api.CustomerSales{
			CustomerName: c.CustomerName,
			Sales:        c.Sales,
		})
	}
	for _, c := range report.Categories {
		apiReport.Categories = append(apiReport.Categories, api.CategorySummary{
			Category: c.Category,
			Sales:    c.Sales,
			Profit:   c.Profit,
		})
	}
	for _, p := range report.SalesOverTime {
		apiReport.SalesOverTime = append(apiReport.SalesOverTime, api.SalesPoint{
			Date:  p.Date.Format("2006-01-02"),
			Sales: p.Sales,
		})
	}

	return apiReport
}

func MapDebugInfoDomainToApi(info domain.DebugInfo) api.DebugInfo {
	apiInfo := api.DebugInfo{
		Columns:          info.Columns,
		RowCount:         info.RowCount,
		FilteredRowCount: info.FilteredRowCount,
		Sample:           []map[string]string{},
	}
	for _, r := range info.Sample {
		apiInfo.Sample = append(apiInfo.Sample, MapRecordDomainToRow(r))
	}
	return apiInfo
}

// MapRecordDomainToRow flattens a record back into a column -> value row for
// the debug sample, passthrough columns included.
func MapRecordDomainToRow(r domain.Record) map[string]string {
	row := map[string]string{
		"Sales":         r.Sales.String(),
		"Profit":        r.Profit.String(),
		"Order Date":    r.OrderDate.Format("2006-01-02"),
		"Region":        r.Region,
		"Category":      r.Category,
		"Sub-Category":  r.SubCategory,
		"Customer Name": r.CustomerName,
	}
	for col, value := range r.Extra {
		row[col] = value
	}
	return row
}
