package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsOptions — параметры выборки пользовательских метрик.
// Пустой Metrics означает набор по умолчанию (views, likes, shares).
type AnalyticsOptions struct {
	UserID   uuid.UUID
	DateFrom time.Time
	DateTo   time.Time
	Metrics  []string
}

// UserAnalytics — подсчитанные метрики за период.
type UserAnalytics struct {
	Metrics map[string]int64  `json:"metrics"`
	Period  map[string]string `json:"period"`
}

// PlatformStats — сводка по платформе для админ-дашборда.
type PlatformStats struct {
	TotalUsers       int64 `json:"total_users"`
	NewUsersToday    int64 `json:"new_users_today"`
	TotalArticles    int64 `json:"total_articles"`
	PendingReviews   int64 `json:"pending_reviews"`
	ActiveUsers      int64 `json:"active_users"`
	ArticlesThisWeek int64 `json:"articles_this_week"`
}
