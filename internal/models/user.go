// models содержит доменные сущности news-platform.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта;
// JSON-теги задают контракт REST-ответов.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole — роль пользователя на платформе.
type UserRole string

const (
	RoleAuthor        UserRole = "author"
	RoleReader        UserRole = "reader"
	RoleAdministrator UserRole = "administrator"
	RoleAuditor       UserRole = "auditor"
)

// ValidUserRole сообщает, известна ли роль.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAuthor, RoleReader, RoleAdministrator, RoleAuditor:
		return true
	}
	return false
}

// User — доменная сущность пользователя.
//
// Особенности:
//   - ID — UUIDv4;
//   - Временные метки — в UTC;
//   - PasswordHash никогда не сериализуется наружу.
type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          UserRole  `json:"role"`
	AnonymousMode bool      `json:"anonymous_mode"`
	// DIDAddress — адрес кошелька автора (для NFT-донатов), может быть пустым.
	DIDAddress      string         `json:"did_address,omitempty"`
	AvatarURL       string         `json:"avatar_url,omitempty"`
	ProfileData     map[string]any `json:"profile_data,omitempty"`
	Preferences     map[string]any `json:"preferences,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	LastActive      time.Time      `json:"last_active"`
	IsActive        bool           `json:"is_active"`
	Verified        bool           `json:"verification_status"`
	ReputationScore float64        `json:"reputation_score"`
}

// UserUpdate — частичное обновление профиля (nil-поля не трогаются).
type UserUpdate struct {
	Username      *string         `json:"username,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Role          *UserRole       `json:"role,omitempty"`
	AnonymousMode *bool           `json:"anonymous_mode,omitempty"`
	ProfileData   *map[string]any `json:"profile_data,omitempty"`
	Preferences   *map[string]any `json:"preferences,omitempty"`
	AvatarURL     *string         `json:"avatar_url,omitempty"`
}

// UserListOptions — параметры выборки пользователей (админ-листинг).
type UserListOptions struct {
	// Search — подстрока для поиска по username/email (ILIKE).
	Search string
	Role   UserRole
	Limit  int32
	Offset int32
}

// AvatarUpload — информация для клиента о presigned PUT загрузке аватара.
type AvatarUpload struct {
	UploadURL      string            `json:"upload_url"`
	AvatarKey      string            `json:"avatar_key"`
	ExpiresIn      time.Duration     `json:"expires_in"`
	RequiredHeader map[string]string `json:"required_headers"`
}
