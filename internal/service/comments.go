package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/pkg/log"
)

// maxCommentLength — верхняя граница длины комментария в рунах.
const maxCommentLength = 2000

// CreateComment создаёт комментарий к опубликованной статье.
func (s *Service) CreateComment(ctx context.Context, caller Identity, articleID uuid.UUID, content string) (*models.Comment, error) {
	const op = "service.comments.CreateComment"

	if s.comments == nil {
		return nil, fmt.Errorf("%s: comment storage is not configured: %w", op, ErrInvalidArgument)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%s: empty content: %w", op, ErrInvalidArgument)
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, fmt.Errorf("%s: content too long: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if article.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	comment, err := s.comments.SaveComment(ctx, &models.Comment{
		ArticleID: articleID,
		UserID:    caller.UserID,
		Content:   content,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Счётчик комментариев на статье обновляется как взаимодействие.
	it := &models.Interaction{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		ArticleID: articleID,
		Type:      models.InteractionComment,
		Strength:  1,
		CreatedAt: comment.CreatedAt,
		SessionID: sessionID(caller.UserID, comment.CreatedAt),
	}
	if err := s.storage.SaveInteraction(ctx, it); err != nil {
		// Комментарий уже создан; рассинхрон счётчика не фатален.
		log.From(ctx).Warn("comment_counter_update_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return comment, nil
}

// CommentsByArticle возвращает комментарии статьи (новые первыми).
func (s *Service) CommentsByArticle(ctx context.Context, articleID uuid.UUID, limit int32) ([]models.Comment, error) {
	const op = "service.comments.CommentsByArticle"

	if s.comments == nil {
		return nil, fmt.Errorf("%s: comment storage is not configured: %w", op, ErrInvalidArgument)
	}

	items, err := s.comments.CommentsByArticle(ctx, articleID, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// DeleteComment удаляет комментарий. Операция модераторская: доступна
// только администратору.
func (s *Service) DeleteComment(ctx context.Context, caller Identity, id string) error {
	const op = "service.comments.DeleteComment"

	if s.comments == nil {
		return fmt.Errorf("%s: comment storage is not configured: %w", op, ErrInvalidArgument)
	}

	if !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
