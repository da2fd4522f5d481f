package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// PresignAvatarUpload генерирует presigned PUT URL для загрузки аватара.
// Валидирует contentType и size согласно конфигу, формирует ключ вида
// "avatars/<userID>/<uuid>.<ext>", и возвращает также набор заголовков,
// которые клиент должен передать при PUT.
func (s *AvatarStorage) PresignAvatarUpload(ctx context.Context, userID uuid.UUID, contentType string, size int64) (*models.AvatarUpload, error) {
	const op = "storage/minio/avatars/PresignAvatarUpload"

	if size <= 0 || size > s.cfg.Avatar.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Avatar.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}

	// Генерация ключа вида: avatars/<userID>/<uuid>.<ext>
	key := path.Join("avatars", userID.String(), uuid.NewString()+ext)

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AvatarUpload{
		UploadURL: u.String(),
		AvatarKey: key,
		ExpiresIn: s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", size),
		},
	}, nil
}

// AvatarURL возвращает публичный URL аватара по ключу объекта.
// Пустой PublicBaseURL — публичной раздачи нет, возвращается пустая строка.
func (s *AvatarStorage) AvatarURL(key string) string {
	if s.cfg.S3.PublicBaseURL == "" || key == "" {
		return ""
	}

	return strings.TrimRight(s.cfg.S3.PublicBaseURL, "/") + "/" + key
}

// RemoveAvatar удаляет объект аватара.
// Отсутствие объекта не считается ошибкой.
func (s *AvatarStorage) RemoveAvatar(ctx context.Context, key string) error {
	const op = "storage/minio/avatars/RemoveAvatar"

	if key == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
