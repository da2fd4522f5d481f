package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

type listCommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	articleID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), caller, articleID, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) CommentsByArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	limit, err := queryInt32(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comments, err := h.svc.CommentsByArticle(r.Context(), articleID, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listCommentsResponse{Comments: comments})
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
