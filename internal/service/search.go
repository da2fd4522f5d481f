package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-news-platform/internal/models"
)

// SearchArticles выполняет полнотекстовый поиск по опубликованным статьям.
// Время выполнения замеряется и возвращается клиенту в миллисекундах.
func (s *Service) SearchArticles(ctx context.Context, opts models.SearchOptions) (*models.SearchResult, error) {
	const op = "service.search.SearchArticles"

	opts.Query = strings.TrimSpace(opts.Query)
	if opts.Query == "" {
		return nil, fmt.Errorf("%s: empty query: %w", op, ErrInvalidArgument)
	}

	switch opts.SortBy {
	case "", models.SortRelevance, models.SortDate, models.SortPopularity:
	default:
		return nil, fmt.Errorf("%s: unknown sort %q: %w", op, opts.SortBy, ErrInvalidArgument)
	}

	if opts.DateFrom != nil && opts.DateTo != nil && opts.DateTo.Before(*opts.DateFrom) {
		return nil, fmt.Errorf("%s: date_to before date_from: %w", op, ErrInvalidArgument)
	}

	opts.Limit = s.clampLimit(opts.Limit)
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	started := time.Now()

	articles, total, err := s.storage.SearchArticles(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.SearchResult{
		Results:         articles,
		TotalCount:      total,
		Query:           opts.Query,
		ExecutionTimeMS: float64(time.Since(started).Microseconds()) / 1000,
	}, nil
}
