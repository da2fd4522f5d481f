package models

import (
	"time"

	"github.com/google/uuid"
)

// InteractionType — тип взаимодействия пользователя со статьёй.
type InteractionType string

const (
	InteractionLike    InteractionType = "like"
	InteractionDislike InteractionType = "dislike"
	InteractionSave    InteractionType = "save"
	InteractionShare   InteractionType = "share"
	InteractionView    InteractionType = "view"
	InteractionComment InteractionType = "comment"
)

// ValidInteractionType сообщает, известен ли тип взаимодействия.
func ValidInteractionType(t InteractionType) bool {
	switch t {
	case InteractionLike, InteractionDislike, InteractionSave,
		InteractionShare, InteractionView, InteractionComment:
		return true
	}
	return false
}

// ReadInteractionTypes — типы, означающие «пользователь уже видел статью».
// Используются резолвером рекомендаций при exclude_read=true.
func ReadInteractionTypes() []InteractionType {
	return []InteractionType{InteractionView, InteractionLike, InteractionSave}
}

// Interaction — доменная сущность взаимодействия.
//
// Особенности:
//   - Strength/ReadingProgress — в диапазоне [0, 1];
//   - TimeSpent — в секундах;
//   - SessionID — производный идентификатор сессии (sha256).
type Interaction struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	ArticleID       uuid.UUID       `json:"article_id"`
	Type            InteractionType `json:"interaction_type"`
	Strength        float64         `json:"interaction_strength"`
	ReadingProgress float64         `json:"reading_progress"`
	TimeSpent       int64           `json:"time_spent"`
	DeviceType      string          `json:"device_type"`
	ContextData     map[string]any  `json:"context_data,omitempty"`
	SessionID       string          `json:"session_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
