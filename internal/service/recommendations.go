package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/cachekey"
	"github.com/pribylovaa/go-news-platform/internal/metrics"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/pkg/log"
)

// ResolveRecommendations отдаёт персональные рекомендации в четыре стадии,
// останавливаясь на первой успешной:
//
//  1. мемо-кэш в Redis: попадание — немедленный возврат без походов в БД;
//     недоступность кэша деградирует до промаха и не фатальна;
//  2. durable-кэш (recommendation_cache): свежий активный снапшот пользователя;
//     идентификаторы превращаются в статьи с сохранением ранжирования,
//     не-published записи молча выпадают. Полностью пустая после фильтрации
//     выдача проваливается на стадию 3, а не возвращается пустой;
//  3. trending-fallback: опубликованные статьи по trending_score DESC,
//     engagement_score DESC, с фильтром категорий и исключением прочитанного;
//  4. мемоизация собранного ответа в Redis (ошибки записи только логируются).
//
// Любая неожиданная ошибка хранилища прерывает запрос целиком (ErrInternal);
// частичных ответов нет.
func (s *Service) ResolveRecommendations(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	const op = "service.recommendations.ResolveRecommendations"

	lg := log.From(ctx)

	if req.Limit <= 0 {
		req.Limit = s.cfg.Limits.Default
	}
	if req.Limit > s.cfg.Limits.Max {
		req.Limit = s.cfg.Limits.Max
	}

	key := cachekey.Recommendations(req.UserID, req.CacheFields())

	// Стадия 1: мемо-кэш.
	if resp := s.memoLookup(ctx, key); resp != nil {
		lg.Debug("recommendations_memo_hit", slog.String("key", key))
		metrics.RecommendationStageTotal.WithLabelValues("memo_hit").Inc()
		return resp, nil
	}

	// Стадия 2: durable-кэш.
	resp, err := s.durableLookup(ctx, req)
	if err != nil {
		lg.Error("recommendations_durable_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	// Стадия 3: trending-fallback.
	if resp == nil {
		resp, err = s.trendingFallback(ctx, req)
		if err != nil {
			lg.Error("recommendations_trending_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
		metrics.RecommendationStageTotal.WithLabelValues("trending_fallback").Inc()
	} else {
		metrics.RecommendationStageTotal.WithLabelValues("durable").Inc()
	}

	// Стадия 4: мемоизация.
	s.memoStore(ctx, key, resp)

	return resp, nil
}

// memoLookup читает мемоизированный ответ из Redis.
// Любая ошибка кэша трактуется как промах.
func (s *Service) memoLookup(ctx context.Context, key string) *models.RecommendationResponse {
	if s.cache == nil {
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Cache)
	defer cancel()

	raw, found, err := s.cache.Get(cctx, key)
	if err != nil {
		log.From(ctx).Warn("recommendations_memo_get_failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return nil
	}
	if !found {
		return nil
	}

	var resp models.RecommendationResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// Битый снапшот — считаем промахом, перезапишем на стадии 4.
		log.From(ctx).Warn("recommendations_memo_decode_failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return nil
	}

	return &resp
}

// memoStore пишет собранный ответ в Redis с TTL мемоизации.
// Ошибки записи только логируются.
func (s *Service) memoStore(ctx context.Context, key string, resp *models.RecommendationResponse) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.From(ctx).Warn("recommendations_memo_encode_failed", slog.String("err", err.Error()))
		return
	}

	// Отвязываемся от дедлайна запроса: запись может доехать и после ответа.
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeouts.Cache)
	defer cancel()

	if err := s.cache.SetWithTTL(cctx, key, raw, s.cfg.Recommendations.MemoTTL); err != nil {
		log.From(ctx).Warn("recommendations_memo_set_failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
}

// durableLookup собирает ответ из свежего активного снапшота recommendation_cache.
// Возврат (nil, nil) — валидного снапшота нет либо он пуст после фильтрации.
func (s *Service) durableLookup(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	now := time.Now().UTC()

	cached, err := s.storage.LatestActiveForUser(ctx, req.UserID, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	ids := cached.ArticleIDs
	if int32(len(ids)) > req.Limit {
		ids = ids[:req.Limit]
	}

	articles, err := s.storage.ArticlesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Не-published статьи выпадают из выдачи молча.
	published := articles[:0]
	for _, a := range articles {
		if a.Status == models.StatusPublished {
			published = append(published, a)
		}
	}

	if len(published) == 0 {
		// Устаревший снапшот без разрешимых статей — проваливаемся на trending.
		return nil, nil
	}

	return &models.RecommendationResponse{
		Recommendations: published,
		ModelUsed:       cached.ModelEnsemble,
		GeneratedAt:     cached.CacheTimestamp,
		ExpiresAt:       cached.ExpiryTimestamp,
	}, nil
}

// trendingFallback собирает неперсонализированную выдачу по трендам.
func (s *Service) trendingFallback(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	var exclude []uuid.UUID

	if req.ExcludeRead {
		ids, err := s.storage.ReadArticleIDs(ctx, req.UserID, models.ReadInteractionTypes())
		if err != nil {
			return nil, err
		}
		exclude = ids
	}

	articles, err := s.storage.TrendingArticles(ctx, req.Categories, exclude, req.Limit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &models.RecommendationResponse{
		Recommendations: articles,
		ModelUsed:       models.ModelTrendingFallback,
		GeneratedAt:     now,
		ExpiresAt:       now.Add(s.cfg.Recommendations.FallbackTTL),
	}, nil
}
