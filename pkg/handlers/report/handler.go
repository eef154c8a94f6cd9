package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/retail-atlas/pkg/adapters"
	"github.com/de-tools/retail-atlas/pkg/charts"
	"github.com/de-tools/retail-atlas/pkg/models/api"
	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/de-tools/retail-atlas/pkg/services/summary"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// EmptyResultWarning is the message rendered when a filter selection matches
// no records.
const EmptyResultWarning = "No data matches the selected filters. Please adjust your selections."

type Handler struct {
	svc summary.Service
}

func NewHandler(svc summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	opts, err := h.svc.Options(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute filter options")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, adapters.MapFilterOptionsDomainToApi(opts))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	sel := selectionFromQuery(r)

	report, err := h.svc.Summarize(ctx, sel)
	if errors.Is(err, summary.ErrEmptyResult) {
		writeJSON(w, r, api.SummaryResponse{Warning: EmptyResultWarning})
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, api.SummaryResponse{Report: adapters.MapSummaryReportDomainToApi(report)})
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "chart")
	sel := selectionFromQuery(r)

	report, err := h.svc.Summarize(ctx, sel)
	if errors.Is(err, summary.ErrEmptyResult) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("chart", name).Msg("failed to compute summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := charts.Render(name, report)
	if err != nil {
		logger.Error().Err(err).Str("chart", name).Msg("failed to render chart")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		logger.Error().Err(err).Str("chart", name).Msg("failed to write chart")
	}
}

func (h *Handler) GetDebug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	info, err := h.svc.Debug(ctx, selectionFromQuery(r))
	if err != nil {
		logger.Error().Err(err).Msg("failed to collect debug info")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, adapters.MapDebugInfoDomainToApi(info))
}

func selectionFromQuery(r *http.Request) domain.FilterSelection {
	q := r.URL.Query()
	return domain.FilterSelection{
		Regions:       q["region"],
		Categories:    q["category"],
		SubCategories: q["sub_category"],
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
