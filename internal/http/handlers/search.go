package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, service.ErrInvalidArgument
	}
	return &t, nil
}

func (h *Handlers) SearchArticles(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	offset, err := queryInt32(r, "offset")
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

	opts := models.SearchOptions{
		Query:      r.URL.Query().Get("q"),
		Categories: splitList(r.URL.Query().Get("categories")),
		Languages:  splitList(r.URL.Query().Get("languages")),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		SortBy:     r.URL.Query().Get("sort_by"),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := r.URL.Query().Get("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.AuthorID = &authorID
	}

	result, err := h.svc.SearchArticles(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
