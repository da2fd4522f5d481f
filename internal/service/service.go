// service содержит бизнес-логику news-platform:
// пользователей и аутентификацию, статьи со скоринговыми функциями,
// взаимодействия, резолвер рекомендаций, поиск, аналитику,
// NFT-донаты и комментарии.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-news-platform/internal/cache"
	"github.com/pribylovaa/go-news-platform/internal/config"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

var (
	// ErrNotFound — запрошенная сущность не найдена. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — конфликт уникальности (username/email, хеш транзакции).
	// Транспорт: HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument — параметры запроса не проходят доменную валидацию.
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь
	// не найден/деактивирован. Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — access-токен некорректен по формату/подписи.
	// Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrPermissionDenied — у вызывающего нет прав на операцию
	// (чужая статья, не-админ). Транспорт: HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInternal — неожиданная ошибка хранилища; наружу уходит только
	// обобщённое сообщение, причина остаётся в логах. Транспорт: HTTP 500.
	ErrInternal = errors.New("internal error")
)

// Service описывает бизнес-логику news-platform.
type Service struct {
	storage  storage.Storage
	comments storage.CommentStorage
	avatars  storage.AvatarStorage // может быть nil, если S3 не сконфигурирован
	cache    cache.Cache           // может быть nil, если Redis не сконфигурирован
	cfg      *config.Config
	chain    ChainProcessor
}

// Option настраивает необязательные зависимости Service.
type Option func(*Service)

// WithCache подключает эпемерный кэш (мемоизация рекомендаций).
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithComments подключает хранилище комментариев.
func WithComments(c storage.CommentStorage) Option {
	return func(s *Service) { s.comments = c }
}

// WithAvatars подключает presigned-загрузку аватаров.
func WithAvatars(a storage.AvatarStorage) Option {
	return func(s *Service) { s.avatars = a }
}

// WithChainProcessor подменяет обработчик blockchain-подтверждений
// (по умолчанию — mockChainProcessor).
func WithChainProcessor(p ChainProcessor) Option {
	return func(s *Service) { s.chain = p }
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		storage: st,
		cfg:     cfg,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.chain == nil {
		s.chain = newMockChainProcessor(cfg.Donations)
	}

	return s
}
