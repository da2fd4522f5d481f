package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/scoring"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/pkg/log"
)

// CreateArticleParams — входные данные создания статьи.
type CreateArticleParams struct {
	Title           string
	Content         string
	Summary         string
	Category        string
	Subcategory     string
	Tags            []string
	Language        string
	SourceURL       string
	ImageURLs       []string
	AnonymousAuthor bool
	Metadata        map[string]any
}

// CreateArticle создаёт статью в статусе draft.
// Производные поля (reading_time, word_count, seo_keywords, quality_score)
// вычисляются здесь через пакет scoring.
func (s *Service) CreateArticle(ctx context.Context, caller Identity, p CreateArticleParams) (*models.Article, error) {
	const op = "service.articles.CreateArticle"

	if caller.Role != models.RoleAuthor && !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	title := strings.TrimSpace(p.Title)
	content := strings.TrimSpace(p.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%s: empty title or content: %w", op, ErrInvalidArgument)
	}

	lang := p.Language
	if lang == "" {
		lang = "en"
	}

	now := time.Now().UTC()
	authorID := caller.UserID

	article := &models.Article{
		ID:              uuid.New(),
		Title:           title,
		Content:         content,
		Summary:         strings.TrimSpace(p.Summary),
		AuthorID:        &authorID,
		AnonymousAuthor: p.AnonymousAuthor,
		Status:          models.StatusDraft,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Tags:            p.Tags,
		Language:        lang,
		ReadingTime:     scoring.ReadingTime(content),
		WordCount:       scoring.WordCount(content),
		SourceURL:       p.SourceURL,
		ImageURLs:       p.ImageURLs,
		SEOKeywords:     scoring.ExtractKeywords(content, 10),
		Metadata:        p.Metadata,
		QualityScore:    scoring.QualityScore(content, title, p.Summary),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.storage.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_created",
		slog.String("article_id", article.ID.String()),
		slog.String("author_id", authorID.String()),
	)

	return article, nil
}

// ArticleByID возвращает статью и асинхронно инкрементирует счётчик просмотров.
// Черновики видны только автору и администратору.
func (s *Service) ArticleByID(ctx context.Context, caller *Identity, id uuid.UUID) (*models.Article, error) {
	const op = "service.articles.ArticleByID"

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if article.Status != models.StatusPublished && !canManageArticle(caller, article) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if article.Status == models.StatusPublished {
		if err := s.storage.IncrementViewCount(ctx, id); err != nil {
			log.From(ctx).Warn("view_count_increment_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else {
			article.ViewCount++
		}
	}

	return article, nil
}

// UpdateArticle применяет частичное обновление.
// При изменении контента производные поля пересчитываются.
func (s *Service) UpdateArticle(ctx context.Context, caller Identity, id uuid.UUID, upd models.ArticleUpdate) (*models.Article, error) {
	const op = "service.articles.UpdateArticle"

	current, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !canManageArticle(&caller, current) {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if upd.Status != nil && !models.ValidArticleStatus(*upd.Status) {
		return nil, fmt.Errorf("%s: unknown status %q: %w", op, *upd.Status, ErrInvalidArgument)
	}

	// Пересчёт производных полей при изменении текста.
	if upd.Content != nil || upd.Title != nil || upd.Summary != nil {
		content := current.Content
		if upd.Content != nil {
			content = strings.TrimSpace(*upd.Content)
			if content == "" {
				return nil, fmt.Errorf("%s: empty content: %w", op, ErrInvalidArgument)
			}
			upd.Content = &content
		}
		title := current.Title
		if upd.Title != nil {
			title = strings.TrimSpace(*upd.Title)
			if title == "" {
				return nil, fmt.Errorf("%s: empty title: %w", op, ErrInvalidArgument)
			}
			upd.Title = &title
		}
		summary := current.Summary
		if upd.Summary != nil {
			summary = strings.TrimSpace(*upd.Summary)
			upd.Summary = &summary
		}

		rt := scoring.ReadingTime(content)
		wc := scoring.WordCount(content)
		kw := scoring.ExtractKeywords(content, 10)
		qs := scoring.QualityScore(content, title, summary)

		upd.ReadingTime = &rt
		upd.WordCount = &wc
		upd.SEOKeywords = &kw
		upd.QualityScore = &qs
	}

	article, err := s.storage.UpdateArticle(ctx, id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// PublishArticle переводит статью в status=published.
func (s *Service) PublishArticle(ctx context.Context, caller Identity, id uuid.UUID) (*models.Article, error) {
	const op = "service.articles.PublishArticle"

	current, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !canManageArticle(&caller, current) {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SetArticleStatus(ctx, id, models.StatusPublished); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_published", slog.String("article_id", id.String()))

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// DeleteArticle удаляет статью (автор или администратор).
func (s *Service) DeleteArticle(ctx context.Context, caller Identity, id uuid.UUID) error {
	const op = "service.articles.DeleteArticle"

	current, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !canManageArticle(&caller, current) {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_deleted", slog.String("article_id", id.String()))

	return nil
}

// ListArticles возвращает страницу статей.
// Неаутентифицированный вызов видит только опубликованные.
func (s *Service) ListArticles(ctx context.Context, caller *Identity, opts models.ArticleListOptions) ([]models.Article, int64, error) {
	const op = "service.articles.ListArticles"

	if opts.Status == "" {
		opts.Status = models.StatusPublished
	}
	if opts.Status != models.StatusPublished {
		// Черновики/архив — только свои, либо админ без ограничений.
		if caller == nil {
			return nil, 0, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		}
		if !caller.IsAdmin() {
			id := caller.UserID
			opts.AuthorID = &id
		}
	}

	opts.Limit = s.clampLimit(opts.Limit)

	articles, total, err := s.storage.ListArticles(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return articles, total, nil
}

// canManageArticle сообщает, может ли вызывающий управлять статьёй:
// автор статьи или администратор.
func canManageArticle(caller *Identity, article *models.Article) bool {
	if caller == nil {
		return false
	}
	if caller.IsAdmin() {
		return true
	}
	return article.AuthorID != nil && *article.AuthorID == caller.UserID
}
