package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/api"
	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/de-tools/retail-atlas/pkg/services/summary"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Options(ctx context.Context) (domain.FilterOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FilterOptions), args.Error(1)
}

func (m *mockService) Summarize(ctx context.Context, sel domain.FilterSelection) (*domain.SummaryReport, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}

func (m *mockService) Report(ctx context.Context, sel domain.FilterSelection) (*domain.Report, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockService) Debug(ctx context.Context, sel domain.FilterSelection) (domain.DebugInfo, error) {
	args := m.Called(ctx, sel)
	return args.Get(0).(domain.DebugInfo), args.Error(1)
}

func setupRouter(svc summary.Service) *chi.Mux {
	h := NewHandler(svc)
	router := chi.NewRouter()
	router.Get("/filters", h.GetFilterOptions)
	router.Get("/summary", h.GetSummary)
	router.Get("/charts/{chart}", h.GetChart)
	router.Get("/debug", h.GetDebug)
	return router
}

func sampleReport() *domain.SummaryReport {
	return &domain.SummaryReport{
		TotalSales:  decimal.NewFromInt(150),
		TotalProfit: decimal.NewFromInt(15),
		TopCustomers: []domain.CustomerSales{
			{CustomerName: "A", Sales: decimal.NewFromInt(150)},
		},
		Categories: []domain.CategorySummary{
			{Category: "Tech", Sales: decimal.NewFromInt(100), Profit: decimal.NewFromInt(10)},
			{Category: "Furniture", Sales: decimal.NewFromInt(50), Profit: decimal.NewFromInt(5)},
		},
		SalesOverTime: []domain.SalesPoint{
			{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Sales: decimal.NewFromInt(150)},
		},
	}
}

func TestHandler_GetFilterOptions(t *testing.T) {
	svc := &mockService{}
	svc.On("Options", mock.Anything).Return(domain.FilterOptions{
		Regions:       []string{"East", "West"},
		Categories:    []string{"Tech"},
		SubCategories: []string{"Phones"},
	}, nil)

	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/filters", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var opts api.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, []string{"East", "West"}, opts.Regions)
	svc.AssertExpectations(t)
}

func TestHandler_GetSummary(t *testing.T) {
	t.Run("success - selection parsed from query", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, domain.FilterSelection{
			Regions:    []string{"East"},
			Categories: []string{"Tech", "Furniture"},
		}).Return(sampleReport(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/summary?region=East&category=Tech&category=Furniture", nil)
		setupRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.SummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Report)
		assert.Empty(t, resp.Warning)
		assert.True(t, resp.Report.TotalSales.Equal(decimal.NewFromInt(150)))
		assert.Len(t, resp.Report.TopCustomers, 1)
		assert.Equal(t, "2021-01-01", resp.Report.SalesOverTime[0].Date)
		svc.AssertExpectations(t)
	})

	t.Run("empty result yields a warning, not an error", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, mock.Anything).Return(nil, summary.ErrEmptyResult)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/summary?region=Nonexistent", nil)
		setupRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.SummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Report)
		assert.Equal(t, EmptyResultWarning, resp.Warning)
	})

	t.Run("error - load failure is a 500", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_GetChart(t *testing.T) {
	t.Run("success - renders a PNG", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, mock.Anything).Return(sampleReport(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/charts/top-customers", nil)
		setupRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", rec.Body.String()[:4])
	})

	t.Run("empty result is a 204", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, mock.Anything).Return(nil, summary.ErrEmptyResult)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/charts/top-customers", nil)
		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("error - unknown chart name", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Summarize", mock.Anything, mock.Anything).Return(sampleReport(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/charts/unknown", nil)
		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetDebug(t *testing.T) {
	svc := &mockService{}
	svc.On("Debug", mock.Anything, domain.FilterSelection{Regions: []string{"East"}}).
		Return(domain.DebugInfo{
			Columns:          []string{"Sales", "Profit", "Order Date"},
			RowCount:         3,
			FilteredRowCount: 2,
			Sample: []domain.Record{
				{
					Region:       "East",
					Category:     "Tech",
					SubCategory:  "Phones",
					CustomerName: "A",
					Sales:        decimal.NewFromInt(100),
					Profit:       decimal.NewFromInt(10),
					OrderDate:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/debug?region=East", nil)
	setupRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var info api.DebugInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, 3, info.RowCount)
	assert.Equal(t, 2, info.FilteredRowCount)
	require.Len(t, info.Sample, 1)
	assert.Equal(t, "A", info.Sample[0]["Customer Name"])
	assert.Equal(t, "2021-01-01", info.Sample[0]["Order Date"])
	svc.AssertExpectations(t)
}
