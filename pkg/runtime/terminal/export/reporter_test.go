package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	report := &domain.Report{
		Title: "Superstore Summary",
		Period: domain.TimePeriod{
			Start:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC),
			Duration: 10,
		},
		TotalSales:  decimal.NewFromInt(150),
		TotalProfit: decimal.NewFromInt(15),
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title:   "Top Customers by Sales",
				Summary: map[string]interface{}{"Customers": 1},
				Details: []domain.ReportDetail{
					{Name: "A", Value: "150.00", Unit: "USD", Description: "total sales"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Superstore Summary (10 days)")
	assert.Contains(t, out, "Period: 2021-01-01 to 2021-01-10")
	assert.Contains(t, out, "Total Sales: USD 150.00")
	assert.Contains(t, out, "Total Profit: USD 15.00")
	assert.Contains(t, out, "=== Top Customers by Sales ===")
	assert.Contains(t, out, "| A")
	assert.Contains(t, out, "total sales")
}
