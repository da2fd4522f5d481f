package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// LatestActiveForUser возвращает самый свежий активный и непросроченный снапшот
// рекомендаций пользователя. Таблицу recommendation_cache наполняет внешний
// генерационный пайплайн; сервис её только читает.
// Ошибки: storage.ErrNotFound, если валидного снапшота нет.
func (s *Storage) LatestActiveForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*models.CachedRecommendation, error) {
	const op = "storage/postgres/recommendations/LatestActiveForUser"

	q := `
	SELECT user_id, recommended_article_ids, scores, model_ensemble,
		cache_timestamp, expiry_timestamp, is_active
	FROM recommendation_cache
	WHERE user_id = $1 AND is_active = TRUE AND expiry_timestamp > $2
	ORDER BY cache_timestamp DESC
	LIMIT 1
	`

	var rec models.CachedRecommendation
	err := s.db.QueryRow(ctx, q, userID, now.UTC()).Scan(
		&rec.UserID,
		&rec.ArticleIDs,
		&rec.Scores,
		&rec.ModelEnsemble,
		&rec.CacheTimestamp,
		&rec.ExpiryTimestamp,
		&rec.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rec, nil
}
