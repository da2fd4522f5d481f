package handlers

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

type createArticleRequest struct {
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	Summary         string         `json:"summary,omitempty"`
	Category        string         `json:"category,omitempty"`
	Subcategory     string         `json:"subcategory,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Language        string         `json:"language,omitempty"`
	SourceURL       string         `json:"source_url,omitempty"`
	ImageURLs       []string       `json:"image_urls,omitempty"`
	AnonymousAuthor bool           `json:"anonymous_author,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type listArticlesResponse struct {
	Articles   []models.Article `json:"articles"`
	TotalCount int64            `json:"total_count"`
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in createArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	article, err := h.svc.CreateArticle(r.Context(), caller, service.CreateArticleParams{
		Title:           in.Title,
		Content:         in.Content,
		Summary:         in.Summary,
		Category:        in.Category,
		Subcategory:     in.Subcategory,
		Tags:            in.Tags,
		Language:        in.Language,
		SourceURL:       in.SourceURL,
		ImageURLs:       in.ImageURLs,
		AnonymousAuthor: in.AnonymousAuthor,
		Metadata:        in.Metadata,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

func (h *Handlers) ArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var caller *service.Identity
	if ident, ok := identity(r); ok {
		caller = &ident
	}

	article, err := h.svc.ArticleByID(r.Context(), caller, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
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

	var upd models.ArticleUpdate
	if err := decodeStrict(r, &upd); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	article, err := h.svc.UpdateArticle(r.Context(), caller, id, upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *Handlers) PublishArticle(w http.ResponseWriter, r *http.Request) {
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

	article, err := h.svc.PublishArticle(r.Context(), caller, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteArticle(r.Context(), caller, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	var caller *service.Identity
	if ident, ok := identity(r); ok {
		caller = &ident
	}

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

	opts := models.ArticleListOptions{
		Status:    models.ArticleStatus(r.URL.Query().Get("status")),
		Category:  r.URL.Query().Get("category"),
		Language:  r.URL.Query().Get("language"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := r.URL.Query().Get("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.AuthorID = &authorID
	}

	articles, total, err := h.svc.ListArticles(r.Context(), caller, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listArticlesResponse{Articles: articles, TotalCount: total})
}
