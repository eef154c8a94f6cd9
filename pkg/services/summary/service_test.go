package summary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/de-tools/retail-atlas/pkg/services/dataset"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Order ID,Order Date,Customer Name,Region,Category,Sub-Category,Sales,Profit
1,2021-01-01,A,East,Tech,Phones,100,10
2,2021-01-02,B,West,Tech,Phones,200,-5
3,2021-01-01,A,East,Furniture,Chairs,50,5
`

func setupService(t *testing.T) Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "superstore.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return NewService(dataset.NewCache(dataset.NewLoaderWithPath(path)), 5)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	t.Run("options list the full dataset dimensions", func(t *testing.T) {
		opts, err := svc.Options(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"East", "West"}, opts.Regions)
		assert.Equal(t, []string{"Furniture", "Tech"}, opts.Categories)
		assert.Equal(t, []string{"Chairs", "Phones"}, opts.SubCategories)
	})

	t.Run("summarize applies the selection", func(t *testing.T) {
		report, err := svc.Summarize(ctx, domain.FilterSelection{Regions: []string{"East"}})
		require.NoError(t, err)
		assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(150)))
		assert.True(t, report.TotalProfit.Equal(decimal.NewFromInt(15)))
	})

	t.Run("summarize surfaces the empty result", func(t *testing.T) {
		_, err := svc.Summarize(ctx, domain.FilterSelection{Regions: []string{"Nonexistent"}})
		assert.ErrorIs(t, err, ErrEmptyResult)
	})

	t.Run("report carries the summary into sections", func(t *testing.T) {
		report, err := svc.Report(ctx, domain.FilterSelection{})
		require.NoError(t, err)
		assert.Len(t, report.Sections, 3)
		assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(350)))
	})

	t.Run("debug exposes columns, counts and a sample", func(t *testing.T) {
		info, err := svc.Debug(ctx, domain.FilterSelection{Regions: []string{"East"}})
		require.NoError(t, err)
		assert.Contains(t, info.Columns, "Sub-Category")
		assert.Equal(t, 3, info.RowCount)
		assert.Equal(t, 2, info.FilteredRowCount)
		assert.Len(t, info.Sample, 2)
	})
}
