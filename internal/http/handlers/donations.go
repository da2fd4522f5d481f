package handlers

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

type createDonationRequest struct {
	ArticleID uuid.UUID `json:"article_id"`
	Amount    float64   `json:"amount"`
	Anonymous bool      `json:"anonymous,omitempty"`
	Message   string    `json:"message,omitempty"`
}

func (h *Handlers) CreateDonation(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in createDonationRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	payment, err := h.svc.CreateDonation(r.Context(), caller, service.CreateDonationParams{
		ArticleID: in.ArticleID,
		Amount:    in.Amount,
		Anonymous: in.Anonymous,
		Message:   in.Message,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handlers) PaymentByID(w http.ResponseWriter, r *http.Request) {
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

	payment, err := h.svc.PaymentByID(r.Context(), caller, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (h *Handlers) AuthorDonationStats(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	authorID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	stats, err := h.svc.AuthorDonationStats(r.Context(), caller, authorID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) DonorDonationStats(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	stats, err := h.svc.DonorDonationStats(r.Context(), caller)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
