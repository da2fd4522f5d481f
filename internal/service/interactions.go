package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// RecordInteractionParams — входные данные записи взаимодействия.
type RecordInteractionParams struct {
	ArticleID       uuid.UUID
	Type            models.InteractionType
	Strength        float64
	ReadingProgress float64
	TimeSpent       int64
	DeviceType      string
	ContextData     map[string]any
}

// RecordInteraction записывает взаимодействие вызывающего со статьёй.
// Счётчики статьи обновляются хранилищем в той же транзакции.
func (s *Service) RecordInteraction(ctx context.Context, caller Identity, p RecordInteractionParams) (*models.Interaction, error) {
	const op = "service.interactions.RecordInteraction"

	if !models.ValidInteractionType(p.Type) {
		return nil, fmt.Errorf("%s: unknown interaction type %q: %w", op, p.Type, ErrInvalidArgument)
	}
	if p.Strength < 0 || p.Strength > 1 {
		return nil, fmt.Errorf("%s: strength out of [0,1]: %w", op, ErrInvalidArgument)
	}
	if p.ReadingProgress < 0 || p.ReadingProgress > 1 {
		return nil, fmt.Errorf("%s: reading_progress out of [0,1]: %w", op, ErrInvalidArgument)
	}
	if p.TimeSpent < 0 {
		return nil, fmt.Errorf("%s: negative time_spent: %w", op, ErrInvalidArgument)
	}

	// Статья должна существовать и быть опубликованной.
	article, err := s.storage.ArticleByID(ctx, p.ArticleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if article.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	now := time.Now().UTC()
	it := &models.Interaction{
		ID:              uuid.New(),
		UserID:          caller.UserID,
		ArticleID:       p.ArticleID,
		Type:            p.Type,
		Strength:        p.Strength,
		ReadingProgress: p.ReadingProgress,
		TimeSpent:       p.TimeSpent,
		DeviceType:      p.DeviceType,
		ContextData:     p.ContextData,
		SessionID:       sessionID(caller.UserID, now),
		CreatedAt:       now,
	}

	if err := s.storage.SaveInteraction(ctx, it); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return it, nil
}

// ListInteractions возвращает взаимодействия вызывающего (новые первыми).
func (s *Service) ListInteractions(ctx context.Context, caller Identity, limit int32) ([]models.Interaction, error) {
	const op = "service.interactions.ListInteractions"

	items, err := s.storage.ListInteractions(ctx, caller.UserID, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// sessionID — производный идентификатор пользовательской сессии:
// sha256 от user_id и часа события. Устойчив в пределах часа,
// не раскрывает исходный идентификатор.
func sessionID(userID uuid.UUID, at time.Time) string {
	h := sha256.Sum256([]byte(userID.String() + at.UTC().Format("2006010215")))
	return hex.EncodeToString(h[:16])
}
