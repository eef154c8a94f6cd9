package api

import "github.com/shopspring/decimal"

type FilterOptions struct {
	Regions       []string `json:"regions"`
	Categories    []string `json:"categories"`
	SubCategories []string `json:"sub_categories"`
}

type CustomerSales struct {
	CustomerName string          `json:"customer_name"`
	Sales        decimal.Decimal `json:"sales"`
}

type CategorySummary struct {
	Category string          `json:"category"`
	Sales    decimal.Decimal `json:"sales"`
	Profit   decimal.Decimal `json:"profit"`
}

type SalesPoint struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

type SummaryReport struct {
	TotalSales    decimal.Decimal   `json:"total_sales"`
	TotalProfit   decimal.Decimal   `json:"total_profit"`
	TopCustomers  []CustomerSales   `json:"top_customers"`
	Categories    []CategorySummary `json:"categories"`
	SalesOverTime []SalesPoint      `json:"sales_over_time"`
}

// SummaryResponse carries either a full report or a warning, never both.
type SummaryResponse struct {
	Warning string         `json:"warning,omitempty"`
	Report  *SummaryReport `json:"report,omitempty"`
}

type DebugInfo struct {
	Columns          []string            `json:"columns"`
	RowCount         int                 `json:"row_count"`
	FilteredRowCount int                 `json:"filtered_row_count"`
	Sample           []map[string]string `json:"sample"`
}
