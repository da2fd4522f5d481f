package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
)

// counterColumn возвращает агрегатную колонку статьи, которую обновляет
// взаимодействие данного типа; пустая строка — счётчик не затрагивается.
func counterColumn(t models.InteractionType) string {
	switch t {
	case models.InteractionLike:
		return "like_count"
	case models.InteractionShare:
		return "share_count"
	case models.InteractionView:
		return "view_count"
	case models.InteractionComment:
		return "comment_count"
	}
	return ""
}

// SaveInteraction записывает взаимодействие и обновляет агрегатный счётчик
// статьи в одной транзакции: либо фиксируются обе записи, либо ни одной.
func (s *Storage) SaveInteraction(ctx context.Context, it *models.Interaction) error {
	const op = "storage/postgres/interactions/SaveInteraction"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	INSERT INTO interactions (id, user_id, article_id, interaction_type,
		interaction_strength, reading_progress, time_spent, device_type,
		context_data, session_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.Exec(ctx, q,
		it.ID,
		it.UserID,
		it.ArticleID,
		it.Type,
		it.Strength,
		it.ReadingProgress,
		it.TimeSpent,
		it.DeviceType,
		it.ContextData,
		it.SessionID,
		it.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if col := counterColumn(it.Type); col != "" {
		q := fmt.Sprintf(`UPDATE articles SET %s = %s + 1 WHERE id = $1`, col, col)
		if _, err := tx.Exec(ctx, q, it.ArticleID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ReadArticleIDs возвращает идентификаторы статей, с которыми пользователь
// взаимодействовал любым из переданных типов (без дубликатов).
func (s *Storage) ReadArticleIDs(ctx context.Context, userID uuid.UUID, types []models.InteractionType) ([]uuid.UUID, error) {
	const op = "storage/postgres/interactions/ReadArticleIDs"

	if len(types) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	q := `
	SELECT DISTINCT article_id FROM interactions
	WHERE user_id = $1 AND interaction_type = ANY($2)
	`

	rows, err := s.db.Query(ctx, q, userID, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// ListInteractions возвращает взаимодействия пользователя (новые первыми).
func (s *Storage) ListInteractions(ctx context.Context, userID uuid.UUID, limit int32) ([]models.Interaction, error) {
	const op = "storage/postgres/interactions/ListInteractions"

	if limit <= 0 {
		limit = 50
	}

	q := `
	SELECT id, user_id, article_id, interaction_type, interaction_strength,
		reading_progress, time_spent, device_type, context_data, session_id, created_at
	FROM interactions
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Interaction, 0, limit)
	for rows.Next() {
		var it models.Interaction
		if err := rows.Scan(
			&it.ID,
			&it.UserID,
			&it.ArticleID,
			&it.Type,
			&it.Strength,
			&it.ReadingProgress,
			&it.TimeSpent,
			&it.DeviceType,
			&it.ContextData,
			&it.SessionID,
			&it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountInteractions считает взаимодействия пользователя по типу за период [from, to).
func (s *Storage) CountInteractions(ctx context.Context, userID uuid.UUID, t models.InteractionType, from, to time.Time) (int64, error) {
	const op = "storage/postgres/interactions/CountInteractions"

	q := `
	SELECT count(*) FROM interactions
	WHERE user_id = $1 AND interaction_type = $2 AND created_at >= $3 AND created_at < $4
	`

	var total int64
	if err := s.db.QueryRow(ctx, q, userID, t, from.UTC(), to.UTC()).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
