package handlers

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

type recordInteractionRequest struct {
	ArticleID       uuid.UUID      `json:"article_id"`
	Type            string         `json:"interaction_type"`
	Strength        float64        `json:"strength"`
	ReadingProgress float64        `json:"reading_progress,omitempty"`
	TimeSpent       int64          `json:"time_spent,omitempty"`
	DeviceType      string         `json:"device_type,omitempty"`
	ContextData     map[string]any `json:"context_data,omitempty"`
}

type listInteractionsResponse struct {
	Interactions []models.Interaction `json:"interactions"`
}

func (h *Handlers) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in recordInteractionRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	interaction, err := h.svc.RecordInteraction(r.Context(), caller, service.RecordInteractionParams{
		ArticleID:       in.ArticleID,
		Type:            models.InteractionType(in.Type),
		Strength:        in.Strength,
		ReadingProgress: in.ReadingProgress,
		TimeSpent:       in.TimeSpent,
		DeviceType:      in.DeviceType,
		ContextData:     in.ContextData,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, interaction)
}

func (h *Handlers) ListInteractions(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	limit, err := queryInt32(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	interactions, err := h.svc.ListInteractions(r.Context(), caller, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listInteractionsResponse{Interactions: interactions})
}
