package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerSales struct {
	CustomerName string
	Sales        decimal.Decimal
}

type CategorySummary struct {
	Category string
	Sales    decimal.Decimal
	Profit   decimal.Decimal
}

type SalesPoint struct {
	Date  time.Time
	Sales decimal.Decimal
}

// SummaryReport holds the aggregates for one filter state. A pure function of
// the FilteredView it was computed from; never cached across render cycles.
type SummaryReport struct {
	TotalSales    decimal.Decimal
	TotalProfit   decimal.Decimal
	TopCustomers  []CustomerSales
	Categories    []CategorySummary
	SalesOverTime []SalesPoint
}

// Report represents a complete renderable report
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalSales  decimal.Decimal
	TotalProfit decimal.Decimal
	Currency    string
}

// TimePeriod represents the time range covered by the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
