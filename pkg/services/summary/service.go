package summary

import (
	"context"
	"sync"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/de-tools/retail-atlas/pkg/services/dataset"
	"github.com/de-tools/retail-atlas/pkg/services/filter"
)

const debugSampleSize = 5

// Service ties the cached dataset, the filter stage and the aggregator
// together for the presenters.
type Service interface {
	Options(ctx context.Context) (domain.FilterOptions, error)
	Summarize(ctx context.Context, sel domain.FilterSelection) (*domain.SummaryReport, error)
	Report(ctx context.Context, sel domain.FilterSelection) (*domain.Report, error)
	Debug(ctx context.Context, sel domain.FilterSelection) (domain.DebugInfo, error)
}

type service struct {
	cache *dataset.Cache
	topN  int

	// filter options are recomputed once per dataset load
	mu        sync.Mutex
	optSource domain.DatasetSource
	opts      domain.FilterOptions
}

func NewService(cache *dataset.Cache, topN int) Service {
	if topN <= 0 {
		topN = DefaultTopCustomers
	}
	return &service{cache: cache, topN: topN}
}

func (s *service) Options(ctx context.Context) (domain.FilterOptions, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.optSource != ds.Source {
		s.opts = filter.Options(ds)
		s.optSource = ds.Source
	}
	return s.opts, nil
}

func (s *service) Summarize(ctx context.Context, sel domain.FilterSelection) (*domain.SummaryReport, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(filter.Apply(ds, sel), s.topN)
}

func (s *service) Report(ctx context.Context, sel domain.FilterSelection) (*domain.Report, error) {
	report, err := s.Summarize(ctx, sel)
	if err != nil {
		return nil, err
	}
	return BuildReport(report), nil
}

func (s *service) Debug(ctx context.Context, sel domain.FilterSelection) (domain.DebugInfo, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return domain.DebugInfo{}, err
	}

	view := filter.Apply(ds, sel)
	sample := view.Records
	if len(sample) > debugSampleSize {
		sample = sample[:debugSampleSize]
	}

	return domain.DebugInfo{
		Columns:          ds.Columns,
		RowCount:         len(ds.Records),
		FilteredRowCount: len(view.Records),
		Sample:           sample,
	}, nil
}
