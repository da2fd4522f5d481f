// storage определяет контракты доступа к хранилищам news-platform.
//
// Реализации:
//   - postgres — пользователи, статьи, взаимодействия, снапшоты рекомендаций,
//     платежи и аналитика;
//   - mongo — комментарии;
//   - minio — presigned-загрузка аватаров.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../../mocks/storage.go -package=mocks

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (username/email, хеш транзакции).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidState — операция недопустима для текущего статуса сущности
	// (например, подтверждение уже подтверждённого платежа).
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument — параметры не проходят ограничения хранилища
	// (тип/размер загружаемого объекта).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UserStorage описывает операции над сущностью models.User.
type UserStorage interface {
	// SaveUser создаёт пользователя. При конфликте username/email — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByID возвращает пользователя по идентификатору; ErrNotFound, если записи нет.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByUsername возвращает пользователя по имени; ErrNotFound, если записи нет.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUser применяет частичное обновление; ErrNotFound, если записи нет.
	UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	// DeactivateUser помечает пользователя как неактивного (мягкое удаление).
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	// TouchLastActive обновляет отметку последней активности.
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	// ListUsers возвращает страницу пользователей и общее число под фильтром.
	ListUsers(ctx context.Context, opts models.UserListOptions) ([]models.User, int64, error)
}

// ArticleStorage описывает операции над сущностью models.Article.
type ArticleStorage interface {
	// SaveArticle создаёт статью.
	SaveArticle(ctx context.Context, article *models.Article) error
	// ArticleByID возвращает статью по идентификатору; ErrNotFound, если записи нет.
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	// ArticlesByIDs возвращает найденные статьи в порядке ids (отсутствующие
	// молча пропускаются).
	ArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error)
	// UpdateArticle применяет частичное обновление; ErrNotFound, если записи нет.
	UpdateArticle(ctx context.Context, id uuid.UUID, upd models.ArticleUpdate) (*models.Article, error)
	// DeleteArticle удаляет статью; ErrNotFound, если записи нет.
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	// ListArticles возвращает страницу статей и общее число под фильтром.
	ListArticles(ctx context.Context, opts models.ArticleListOptions) ([]models.Article, int64, error)
	// TrendingArticles возвращает опубликованные статьи, отсортированные по
	// trending_score DESC, engagement_score DESC. Пустые categories/excludeIDs —
	// без соответствующего фильтра.
	TrendingArticles(ctx context.Context, categories []string, excludeIDs []uuid.UUID, limit int32) ([]models.Article, error)
	// SearchArticles выполняет полнотекстовый поиск по опубликованным статьям.
	SearchArticles(ctx context.Context, opts models.SearchOptions) ([]models.Article, int64, error)
	// IncrementViewCount атомарно увеличивает счётчик просмотров.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	// SetArticleStatus меняет статус статьи (модерация, архивация).
	SetArticleStatus(ctx context.Context, id uuid.UUID, status models.ArticleStatus) error
}

// InteractionStorage описывает операции над сущностью models.Interaction.
type InteractionStorage interface {
	// SaveInteraction записывает взаимодействие и обновляет агрегатные
	// счётчики статьи (like_count/share_count/view_count) в одной транзакции.
	SaveInteraction(ctx context.Context, it *models.Interaction) error
	// ReadArticleIDs возвращает идентификаторы статей, с которыми пользователь
	// взаимодействовал любым из переданных типов.
	ReadArticleIDs(ctx context.Context, userID uuid.UUID, types []models.InteractionType) ([]uuid.UUID, error)
	// ListInteractions возвращает взаимодействия пользователя (новые первыми).
	ListInteractions(ctx context.Context, userID uuid.UUID, limit int32) ([]models.Interaction, error)
	// CountInteractions считает взаимодействия пользователя по типу за период.
	CountInteractions(ctx context.Context, userID uuid.UUID, t models.InteractionType, from, to time.Time) (int64, error)
}

// RecommendationStorage описывает чтение снапшотов персональных рекомендаций,
// записанных внешним генерационным пайплайном.
type RecommendationStorage interface {
	// LatestActiveForUser возвращает самый свежий активный и непросроченный
	// снапшот пользователя; ErrNotFound, если такого нет.
	LatestActiveForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*models.CachedRecommendation, error)
}

// PaymentStorage описывает операции над сущностью models.Payment.
type PaymentStorage interface {
	// SavePayment создаёт платёж. При конфликте transaction_hash — ErrAlreadyExists.
	SavePayment(ctx context.Context, p *models.Payment) error
	// PaymentByID возвращает платёж по идентификатору; ErrNotFound, если записи нет.
	PaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	// ConfirmPayment переводит платёж pending -> confirmed; для любого другого
	// исходного статуса возвращает ErrInvalidState.
	ConfirmPayment(ctx context.Context, id uuid.UUID, at time.Time) (*models.Payment, error)
	// AuthorStats возвращает сводку подтверждённых донатов автора.
	AuthorStats(ctx context.Context, authorID uuid.UUID) (*models.AuthorStats, error)
	// DonorStats возвращает сводку донатов жертвователя.
	DonorStats(ctx context.Context, donorID uuid.UUID) (*models.DonorStats, error)
}

// AnalyticsStorage описывает агрегирующие выборки для аналитики.
type AnalyticsStorage interface {
	// UserMetrics считает метрики пользователя за период.
	UserMetrics(ctx context.Context, opts models.AnalyticsOptions) (*models.UserAnalytics, error)
	// PlatformStats возвращает сводку по платформе для админ-дашборда.
	PlatformStats(ctx context.Context, now time.Time) (*models.PlatformStats, error)
}

// Storage задаёт агрегированный контракт доступа к PostgreSQL.
type Storage interface {
	UserStorage
	ArticleStorage
	InteractionStorage
	RecommendationStorage
	PaymentStorage
	AnalyticsStorage
	Close()
}

// CommentStorage описывает операции над комментариями (MongoDB).
type CommentStorage interface {
	// SaveComment создаёт комментарий и возвращает его с присвоенным ID.
	SaveComment(ctx context.Context, c *models.Comment) (*models.Comment, error)
	// CommentsByArticle возвращает комментарии статьи (новые первыми).
	CommentsByArticle(ctx context.Context, articleID uuid.UUID, limit int32) ([]models.Comment, error)
	// DeleteComment удаляет комментарий; ErrNotFound, если записи нет.
	DeleteComment(ctx context.Context, id string) error
}

// AvatarStorage описывает выдачу presigned-ссылок для загрузки аватаров (S3/MinIO).
type AvatarStorage interface {
	// PresignAvatarUpload возвращает presigned PUT URL и ключ объекта.
	PresignAvatarUpload(ctx context.Context, userID uuid.UUID, contentType string, size int64) (*models.AvatarUpload, error)
	// AvatarURL возвращает публичный URL аватара по ключу объекта.
	AvatarURL(key string) string
	// RemoveAvatar удаляет объект аватара; отсутствие объекта не считается ошибкой.
	RemoveAvatar(ctx context.Context, key string) error
}
