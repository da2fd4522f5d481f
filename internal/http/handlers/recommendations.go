package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

// Границы запроса рекомендаций. Нарушение — ошибка валидации
// на этом уровне, до вызова резолвера.
const (
	minRecommendationLimit = 1
	maxRecommendationLimit = 100
)

func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	// limit необязателен, но заданное значение обязано попадать
	// в допустимый диапазон: отсутствие параметра и "limit=0" —
	// разные запросы, второй отклоняется.
	var limit int32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < minRecommendationLimit || n > maxRecommendationLimit {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		limit = int32(n)
	}
	excludeRead, err := queryBool(r, "exclude_read")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	req := models.RecommendationRequest{
		UserID:      caller.UserID,
		Limit:       limit,
		ExcludeRead: excludeRead,
	}
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				req.Categories = append(req.Categories, c)
			}
		}
	}
	if raw := r.URL.Query().Get("diversity_weight"); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		// NaN не проходит проверку диапазона.
		if err != nil || !(weight >= 0 && weight <= 1) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		req.DiversityWeight = weight
	}

	resp, err := h.svc.ResolveRecommendations(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
