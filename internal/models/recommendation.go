package models

import (
	"time"

	"github.com/google/uuid"
)

// ModelTrendingFallback — метка неперсонализированной выдачи по трендам.
const ModelTrendingFallback = "trending_fallback"

// RecommendationRequest — параметры запроса персональных рекомендаций.
// Неизменяем после конструирования; Limit ограничивает размер выдачи.
type RecommendationRequest struct {
	UserID          uuid.UUID `json:"user_id"`
	Limit           int32     `json:"limit"`
	Categories      []string  `json:"categories,omitempty"`
	ExcludeRead     bool      `json:"exclude_read"`
	DiversityWeight float64   `json:"diversity_weight"`
}

// CacheFields возвращает поля запроса для построения детерминированного
// ключа кэша. UserID в набор не входит — он часть префикса ключа.
func (r RecommendationRequest) CacheFields() map[string]any {
	return map[string]any{
		"limit":            r.Limit,
		"categories":       r.Categories,
		"exclude_read":     r.ExcludeRead,
		"diversity_weight": r.DiversityWeight,
	}
}

// CachedRecommendation — персональный снапшот рекомендаций, записанный
// внешним генерационным пайплайном. Резолвер только читает его.
//
// Инварианты:
//   - len(Scores) == len(ArticleIDs), Scores отсортированы по убыванию;
//   - запись валидна, пока IsActive и now < ExpiryTimestamp.
type CachedRecommendation struct {
	UserID          uuid.UUID   `json:"user_id"`
	ArticleIDs      []uuid.UUID `json:"recommended_article_ids"`
	Scores          []float64   `json:"scores"`
	ModelEnsemble   string      `json:"model_ensemble"`
	CacheTimestamp  time.Time   `json:"cache_timestamp"`
	ExpiryTimestamp time.Time   `json:"expiry_timestamp"`
	IsActive        bool        `json:"is_active"`
}

// RecommendationResponse — итог работы резолвера.
// Durably не хранится — только мемоизируется в Redis на время TTL.
type RecommendationResponse struct {
	Recommendations []Article `json:"recommendations"`
	ModelUsed       string    `json:"model_used"`
	GeneratedAt     time.Time `json:"generated_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}
