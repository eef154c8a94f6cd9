package summary

import (
	"fmt"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
)

// BuildReport assembles the sectioned report rendered by the terminal
// reporter from an already computed SummaryReport.
func BuildReport(report *domain.SummaryReport) *domain.Report {
	period := reportPeriod(report.SalesOverTime)

	customerDetails := make([]domain.ReportDetail, 0, len(report.TopCustomers))
	for _, c := range report.TopCustomers {
		customerDetails = append(customerDetails, domain.ReportDetail{
			Name:        c.CustomerName,
			Value:       c.Sales.StringFixed(2),
			Unit:        "USD",
			Description: "total sales",
		})
	}

	categoryDetails := make([]domain.ReportDetail, 0, len(report.Categories)*2)
	for _, c := range report.Categories {
		categoryDetails = append(categoryDetails,
			domain.ReportDetail{
				Name:        c.Category,
				Value:       c.Sales.StringFixed(2),
				Unit:        "USD",
				Description: "sales",
			},
			domain.ReportDetail{
				Name:        c.Category,
				Value:       c.Profit.StringFixed(2),
				Unit:        "USD",
				Description: "profit",
			},
		)
	}

	timeDetails := make([]domain.ReportDetail, 0, len(report.SalesOverTime))
	for _, p := range report.SalesOverTime {
		timeDetails = append(timeDetails, domain.ReportDetail{
			Name:        p.Date.Format("2006-01-02"),
			Value:       p.Sales.StringFixed(2),
			Unit:        "USD",
			Description: "sales",
		})
	}

	return &domain.Report{
		Title:       "Superstore Summary",
		Period:      period,
		TotalSales:  report.TotalSales,
		TotalProfit: report.TotalProfit,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Top Customers by Sales",
				Summary: map[string]interface{}{
					"Customers": len(report.TopCustomers),
				},
				Details: customerDetails,
			},
			{
				Title: "Sales & Profit by Category",
				Summary: map[string]interface{}{
					"Categories": len(report.Categories),
				},
				Details: categoryDetails,
			},
			{
				Title: "Sales Over Time",
				Summary: map[string]interface{}{
					"Days": len(report.SalesOverTime),
					"Range": fmt.Sprintf("%s to %s",
						period.Start.Format("2006-01-02"), period.End.Format("2006-01-02")),
				},
				Details: timeDetails,
			},
		},
	}
}

func reportPeriod(points []domain.SalesPoint) domain.TimePeriod {
	if len(points) == 0 {
		return domain.TimePeriod{}
	}
	start := points[0].Date
	end := points[len(points)-1].Date
	return domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24) + 1,
	}
}
