package cachekey

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Файл unit-тестов для пакета cachekey.
//
// Покрываем ключевые свойства:
//  - детерминизм: одинаковый вход -> одинаковый ключ;
//  - независимость от порядка полей (канонизация сортировкой);
//  - чувствительность к значению любого поля;
//  - формат ключа: "recommendations:<userID>:<hex>".

func TestRecommendations_Deterministic(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	fields := map[string]any{
		"limit":        int32(20),
		"categories":   []string{"tech", "science"},
		"exclude_read": true,
	}

	k1 := Recommendations(uid, fields)
	k2 := Recommendations(uid, fields)
	require.Equal(t, k1, k2)
}

func TestRecommendations_OrderIndependent(t *testing.T) {
	t.Parallel()

	uid := uuid.New()

	// Go-мапы не гарантируют порядок обхода, поэтому строим два
	// независимых экземпляра с разным порядком вставки.
	a := map[string]any{}
	a["limit"] = int32(10)
	a["exclude_read"] = false
	a["diversity_weight"] = 0.3

	b := map[string]any{}
	b["diversity_weight"] = 0.3
	b["exclude_read"] = false
	b["limit"] = int32(10)

	require.Equal(t, Recommendations(uid, a), Recommendations(uid, b))
}

func TestRecommendations_SensitiveToValues(t *testing.T) {
	t.Parallel()

	uid := uuid.New()

	base := map[string]any{"limit": int32(10), "exclude_read": false}
	other := map[string]any{"limit": int32(11), "exclude_read": false}
	flipped := map[string]any{"limit": int32(10), "exclude_read": true}

	require.NotEqual(t, Recommendations(uid, base), Recommendations(uid, other))
	require.NotEqual(t, Recommendations(uid, base), Recommendations(uid, flipped))
}

func TestRecommendations_SensitiveToUser(t *testing.T) {
	t.Parallel()

	fields := map[string]any{"limit": int32(10)}
	require.NotEqual(t,
		Recommendations(uuid.New(), fields),
		Recommendations(uuid.New(), fields),
	)
}

func TestRecommendations_KeyFormat(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	key := Recommendations(uid, map[string]any{"limit": int32(5)})

	parts := strings.Split(key, ":")
	require.Len(t, parts, 3)
	require.Equal(t, "recommendations", parts[0])
	require.Equal(t, uid.String(), parts[1])
	// sha256 в hex — фиксированные 64 символа.
	require.Len(t, parts[2], 64)
}

func TestRecommendations_SequencesAreSets(t *testing.T) {
	t.Parallel()

	uid := uuid.New()

	// Последовательности трактуются как множества: порядок элементов
	// не влияет на ключ.
	cats := []string{"tech", "science"}
	a := Recommendations(uid, map[string]any{"categories": cats})
	b := Recommendations(uid, map[string]any{"categories": []string{"science", "tech"}})
	require.Equal(t, a, b)

	// Канонизация не мутирует вход вызывающего.
	require.Equal(t, []string{"tech", "science"}, cats)

	// Пустое множество отличается от непустого.
	c := Recommendations(uid, map[string]any{"categories": []string{}})
	require.NotEqual(t, a, c)

	// Разный состав множества — разные ключи.
	d := Recommendations(uid, map[string]any{"categories": []string{"tech", "sport"}})
	require.NotEqual(t, a, d)

	// Числовые множества канонизируются так же.
	e := Recommendations(uid, map[string]any{"ids": []int32{10, 9, 2}})
	f := Recommendations(uid, map[string]any{"ids": []int32{2, 10, 9}})
	require.Equal(t, e, f)
}
