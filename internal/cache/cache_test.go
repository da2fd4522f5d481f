package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// Файл unit-тестов для пакета cache (реализация поверх Redis).
//
// Поднимаем in-memory Redis (miniredis) и проверяем:
//  - round-trip Get/SetWithTTL;
//  - miss на отсутствующем ключе (found=false, без ошибки);
//  - истечение TTL (через miniredis.FastForward);
//  - ошибку на недоступном сервере (после mr.Close()).

// newCacheForTest — фабрика кэша поверх miniredis с автоочисткой.
func newCacheForTest(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestCache_RoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := newCacheForTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetWithTTL(ctx, "k", []byte(`{"v":1}`), time.Hour))

	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`{"v":1}`), val)
}

func TestCache_MissOnAbsentKey(t *testing.T) {
	t.Parallel()

	c, _ := newCacheForTest(t)

	val, found, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, val)
}

func TestCache_TTLExpires(t *testing.T) {
	t.Parallel()

	c, mr := newCacheForTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetWithTTL(ctx, "k", []byte("v"), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestCache_Ping(t *testing.T) {
	t.Parallel()

	c, mr := newCacheForTest(t)
	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	require.Error(t, c.Ping(context.Background()))
}

func TestCache_ErrorWhenServerDown(t *testing.T) {
	t.Parallel()

	c, mr := newCacheForTest(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	require.Error(t, err)

	err = c.SetWithTTL(context.Background(), "k", []byte("v"), time.Minute)
	require.Error(t, err)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache("not-a-redis-url")
	require.Error(t, err)
}
