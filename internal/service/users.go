package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// RegisterParams — входные данные регистрации.
type RegisterParams struct {
	Username   string
	Email      string
	Password   string
	Role       models.UserRole
	DIDAddress string
}

// AuthResult — итог регистрации/входа: пользователь и access-токен.
type AuthResult struct {
	User        *models.User
	AccessToken string
	ExpiresIn   time.Duration
}

// RegisterUser регистрирует нового пользователя и сразу выдаёт access-токен.
func (s *Service) RegisterUser(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	const op = "service.users.RegisterUser"

	username := strings.TrimSpace(p.Username)
	if len(username) < 3 {
		return nil, fmt.Errorf("%s: username too short: %w", op, ErrInvalidArgument)
	}

	normEmail, err := validateEmail(p.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validatePassword(p.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	role := p.Role
	if role == "" {
		role = models.RoleReader
	}
	if !models.ValidUserRole(role) {
		return nil, fmt.Errorf("%s: unknown role %q: %w", op, p.Role, ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        normEmail,
		PasswordHash: string(hashed),
		Role:         role,
		DIDAddress:   strings.TrimSpace(p.DIDAddress),
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActive:   now,
		IsActive:     true,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)

	token, err := s.generateAccessToken(ctx, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{User: user, AccessToken: token, ExpiresIn: s.cfg.Auth.AccessTokenTTL}, nil
}

// LoginUser выполняет вход по username+пароль.
// Деактивированный пользователь получает тот же ErrInvalidCredentials,
// что и несуществующий: наружу не утекает, какая именно проверка не прошла.
func (s *Service) LoginUser(ctx context.Context, username, password string) (*AuthResult, error) {
	const op = "service.users.LoginUser"

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := time.Now().UTC()
	if err := s.storage.TouchLastActive(ctx, user.ID, now); err != nil {
		// Не критично для входа.
		log.From(ctx).Warn("touch_last_active_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	token, err := s.generateAccessToken(ctx, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{User: user, AccessToken: token, ExpiresIn: s.cfg.Auth.AccessTokenTTL}, nil
}

// UserByID возвращает пользователя по идентификатору.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUser применяет частичное обновление профиля.
// Менять чужой профиль может только администратор; роль — только администратор.
func (s *Service) UpdateUser(ctx context.Context, caller Identity, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	const op = "service.users.UpdateUser"

	if caller.UserID != id && !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if upd.Role != nil {
		if !caller.IsAdmin() {
			return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		}
		if !models.ValidUserRole(*upd.Role) {
			return nil, fmt.Errorf("%s: unknown role %q: %w", op, *upd.Role, ErrInvalidArgument)
		}
	}

	if upd.Email != nil {
		normEmail, err := validateEmail(*upd.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		upd.Email = &normEmail
	}

	user, err := s.storage.UpdateUser(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// DeactivateUser помечает пользователя как неактивного (мягкое удаление).
// Доступно владельцу профиля и администратору.
func (s *Service) DeactivateUser(ctx context.Context, caller Identity, id uuid.UUID) error {
	const op = "service.users.DeactivateUser"

	if caller.UserID != id && !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.DeactivateUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_deactivated", slog.String("user_id", id.String()))

	return nil
}

// ListUsers возвращает страницу пользователей (только для администратора).
func (s *Service) ListUsers(ctx context.Context, caller Identity, opts models.UserListOptions) ([]models.User, int64, error) {
	const op = "service.users.ListUsers"

	if !caller.IsAdmin() {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if opts.Role != "" && !models.ValidUserRole(opts.Role) {
		return nil, 0, fmt.Errorf("%s: unknown role %q: %w", op, opts.Role, ErrInvalidArgument)
	}

	opts.Limit = s.clampLimit(opts.Limit)

	users, total, err := s.storage.ListUsers(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return users, total, nil
}

// AvatarUploadURL выдаёт presigned PUT URL для загрузки аватара вызывающего.
func (s *Service) AvatarUploadURL(ctx context.Context, caller Identity, contentType string, size int64) (*models.AvatarUpload, error) {
	const op = "service.users.AvatarUploadURL"

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: avatar storage is not configured: %w", op, ErrInvalidArgument)
	}

	info, err := s.avatars.PresignAvatarUpload(ctx, caller.UserID, contentType, size)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmAvatarUpload фиксирует загруженный аватар в профиле:
// ключ превращается в публичный URL и сохраняется в users.avatar_url.
func (s *Service) ConfirmAvatarUpload(ctx context.Context, caller Identity, key string) (*models.User, error) {
	const op = "service.users.ConfirmAvatarUpload"

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: avatar storage is not configured: %w", op, ErrInvalidArgument)
	}

	// Ключ обязан принадлежать вызывающему.
	if !strings.HasPrefix(key, "avatars/"+caller.UserID.String()+"/") {
		return nil, fmt.Errorf("%s: foreign avatar key: %w", op, ErrInvalidArgument)
	}

	url := s.avatars.AvatarURL(key)

	user, err := s.storage.UpdateUser(ctx, caller.UserID, models.UserUpdate{AvatarURL: &url})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// clampLimit приводит запрошенный размер страницы к [1, cfg.Limits.Max],
// подставляя cfg.Limits.Default при нуле.
func (s *Service) clampLimit(limit int32) int32 {
	if limit <= 0 {
		return s.cfg.Limits.Default
	}
	if limit > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}
	return limit
}

// validateEmail нормализует и проверяет формат e-mail.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email")
	}

	return email, nil
}

// validatePassword проверяет минимальную политику сложности:
// не короче 8 символов, хотя бы одна буква и одна цифра.
func validatePassword(password string) error {
	if password == "" {
		return ErrInvalidArgument
	}
	if len(password) < 8 {
		return ErrInvalidArgument
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return ErrInvalidArgument
	}

	return nil
}
