// cache — эпемерный TTL-кэш поверх Redis.
//
// Кэш используется резолвером рекомендаций для мемоизации готовых
// ответов: его недоступность никогда не фатальна для запроса —
// ошибки носят рекомендательный характер и гасятся вызывающей стороной.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache — минимальный контракт эпемерного кэша.
type Cache interface {
	// Get возвращает значение и признак его наличия в кэше.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// SetWithTTL сохраняет значение с TTL. Ошибка записи — рекомендательная.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Ping проверяет доступность кэша (health-check).
	Ping(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
func NewRedisCache(redisURL string) (Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return val, true, nil
}

func (c *redisCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
