package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus — статус публикации статьи.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
	StatusBlocked   ArticleStatus = "blocked"
)

// ValidArticleStatus сообщает, известен ли статус.
func ValidArticleStatus(s ArticleStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusBlocked:
		return true
	}
	return false
}

// Article — доменная сущность статьи.
//
// Особенности:
//   - ID — UUIDv4;
//   - Временные метки — в UTC;
//   - ReadingTime/WordCount/SEOKeywords/QualityScore вычисляются сервисом
//     при создании и при изменении контента (пакет scoring);
//   - TrendingScore/EngagementScore пересчитываются по агрегатам взаимодействий.
type Article struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	Summary         string         `json:"summary,omitempty"`
	AuthorID        *uuid.UUID     `json:"author_id,omitempty"`
	AnonymousAuthor bool           `json:"anonymous_author"`
	Status          ArticleStatus  `json:"status"`
	Category        string         `json:"category"`
	Subcategory     string         `json:"subcategory,omitempty"`
	Tags            []string       `json:"tags"`
	Language        string         `json:"language"`
	ReadingTime     int            `json:"reading_time"`
	WordCount       int            `json:"word_count"`
	SourceURL       string         `json:"source_url,omitempty"`
	ImageURLs       []string       `json:"image_urls,omitempty"`
	SEOKeywords     []string       `json:"seo_keywords,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ViewCount       int64          `json:"view_count"`
	LikeCount       int64          `json:"like_count"`
	CommentCount    int64          `json:"comment_count"`
	ShareCount      int64          `json:"share_count"`
	EngagementScore float64        `json:"engagement_score"`
	QualityScore    float64        `json:"quality_score"`
	TrendingScore   float64        `json:"trending_score"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ArticleUpdate — частичное обновление статьи (nil-поля не трогаются).
type ArticleUpdate struct {
	Title           *string         `json:"title,omitempty"`
	Content         *string         `json:"content,omitempty"`
	Summary         *string         `json:"summary,omitempty"`
	Category        *string         `json:"category,omitempty"`
	Subcategory     *string         `json:"subcategory,omitempty"`
	Tags            *[]string       `json:"tags,omitempty"`
	Language        *string         `json:"language,omitempty"`
	Status          *ArticleStatus  `json:"status,omitempty"`
	AnonymousAuthor *bool           `json:"anonymous_author,omitempty"`
	Metadata        *map[string]any `json:"metadata,omitempty"`
	// Пересчитанные сервисом производные поля (выставляются только
	// при изменении Content/Title/Summary).
	ReadingTime  *int      `json:"-"`
	WordCount    *int      `json:"-"`
	SEOKeywords  *[]string `json:"-"`
	QualityScore *float64  `json:"-"`
}

// ArticleListOptions — параметры выборки списка статей.
type ArticleListOptions struct {
	Status    ArticleStatus
	Category  string
	Language  string
	AuthorID  *uuid.UUID
	SortBy    string
	SortOrder string
	Limit     int32
	Offset    int32
}

// SearchSort — режимы сортировки полнотекстового поиска.
const (
	SortRelevance  = "relevance"
	SortDate       = "date"
	SortPopularity = "popularity"
)

// SearchOptions — параметры полнотекстового поиска по статьям.
type SearchOptions struct {
	Query      string
	Categories []string
	Languages  []string
	AuthorID   *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	SortBy     string
	Limit      int32
	Offset     int32
}

// SearchResult — страница результатов поиска.
type SearchResult struct {
	Results         []Article `json:"results"`
	TotalCount      int64     `json:"total_count"`
	Query           string    `json:"query"`
	ExecutionTimeMS float64   `json:"execution_time_ms"`
}
