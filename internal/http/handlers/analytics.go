package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

func (h *Handlers) UserAnalytics(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	dateFrom, err := queryTime(r, "date_from")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	dateTo, err := queryTime(r, "date_to")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	opts := models.AnalyticsOptions{
		UserID:  id,
		Metrics: splitList(r.URL.Query().Get("metrics")),
	}
	if dateFrom != nil {
		opts.DateFrom = *dateFrom
	}
	if dateTo != nil {
		opts.DateTo = *dateTo
	}

	analytics, err := h.svc.UserAnalytics(r.Context(), caller, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

func (h *Handlers) PlatformStats(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	stats, err := h.svc.PlatformStats(r.Context(), caller)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
