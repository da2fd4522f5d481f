package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-news-platform/internal/models"
)

// UserAnalytics считает метрики пользователя за период.
// Свои метрики видит каждый, чужие — администратор и аудитор.
func (s *Service) UserAnalytics(ctx context.Context, caller Identity, opts models.AnalyticsOptions) (*models.UserAnalytics, error) {
	const op = "service.analytics.UserAnalytics"

	if opts.UserID != caller.UserID && !caller.IsAdmin() && caller.Role != models.RoleAuditor {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	now := time.Now().UTC()
	if opts.DateTo.IsZero() {
		opts.DateTo = now
	}
	if opts.DateFrom.IsZero() {
		opts.DateFrom = opts.DateTo.AddDate(0, 0, -30)
	}
	if opts.DateTo.Before(opts.DateFrom) {
		return nil, fmt.Errorf("%s: date_to before date_from: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.UserMetrics(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// PlatformStats возвращает сводку по платформе (администратор и аудитор).
func (s *Service) PlatformStats(ctx context.Context, caller Identity) (*models.PlatformStats, error) {
	const op = "service.analytics.PlatformStats"

	if !caller.IsAdmin() && caller.Role != models.RoleAuditor {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	stats, err := s.storage.PlatformStats(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
