package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-news-platform/internal/models"
)

// metricInteraction сопоставляет имя метрики типу взаимодействия.
// Неизвестные метрики молча пропускаются.
var metricInteraction = map[string]models.InteractionType{
	"views":    models.InteractionView,
	"likes":    models.InteractionLike,
	"shares":   models.InteractionShare,
	"saves":    models.InteractionSave,
	"comments": models.InteractionComment,
}

// UserMetrics считает метрики пользователя за период [DateFrom, DateTo).
// Пустой Metrics означает набор по умолчанию: views, likes, shares.
func (s *Storage) UserMetrics(ctx context.Context, opts models.AnalyticsOptions) (*models.UserAnalytics, error) {
	const op = "storage/postgres/analytics/UserMetrics"

	metrics := opts.Metrics
	if len(metrics) == 0 {
		metrics = []string{"views", "likes", "shares"}
	}

	result := &models.UserAnalytics{
		Metrics: make(map[string]int64, len(metrics)),
		Period: map[string]string{
			"from": opts.DateFrom.UTC().Format(time.RFC3339),
			"to":   opts.DateTo.UTC().Format(time.RFC3339),
		},
	}

	q := `
	SELECT count(*) FROM interactions
	WHERE user_id = $1 AND interaction_type = $2 AND created_at >= $3 AND created_at < $4
	`

	for _, m := range metrics {
		t, ok := metricInteraction[m]
		if !ok {
			continue
		}

		var n int64
		if err := s.db.QueryRow(ctx, q, opts.UserID, t, opts.DateFrom.UTC(), opts.DateTo.UTC()).Scan(&n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.Metrics[m] = n
	}

	return result, nil
}

// PlatformStats возвращает сводку по платформе для админ-дашборда.
// active_users — пользователи с last_active за последние 7 дней.
func (s *Storage) PlatformStats(ctx context.Context, now time.Time) (*models.PlatformStats, error) {
	const op = "storage/postgres/analytics/PlatformStats"

	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	q := `
	SELECT
		(SELECT count(*) FROM users),
		(SELECT count(*) FROM users WHERE created_at >= $1),
		(SELECT count(*) FROM articles),
		(SELECT count(*) FROM articles WHERE status = 'draft'),
		(SELECT count(*) FROM users WHERE last_active >= $2),
		(SELECT count(*) FROM articles WHERE created_at >= $2)
	`

	var stats models.PlatformStats
	err := s.db.QueryRow(ctx, q, dayStart, weekAgo).Scan(
		&stats.TotalUsers,
		&stats.NewUsersToday,
		&stats.TotalArticles,
		&stats.PendingReviews,
		&stats.ActiveUsers,
		&stats.ArticlesThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}
