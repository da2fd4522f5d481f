package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pribylovaa/go-news-platform/internal/cache"
	"github.com/pribylovaa/go-news-platform/internal/config"
	platformhttp "github.com/pribylovaa/go-news-platform/internal/http"
	"github.com/pribylovaa/go-news-platform/internal/http/handlers"
	"github.com/pribylovaa/go-news-platform/internal/service"
	"github.com/pribylovaa/go-news-platform/internal/storage/minio"
	"github.com/pribylovaa/go-news-platform/internal/storage/mongo"
	"github.com/pribylovaa/go-news-platform/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting news-platform", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подключение к БД c таймаутом.
	initCtx, initCancel := context.WithTimeout(rootCtx, 10*time.Second)
	defer initCancel()

	db, err := postgres.New(initCtx, cfg.DB.URL)
	if err != nil {
		log.Error("db_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	log.Info("db_connected")

	health := handlers.HealthChecks{"postgres": db.Ping}

	opts := []service.Option{}

	// Redis — рекомендательный: без него деградируем до работы без мемоизации.
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		log.Warn("redis_unavailable", slog.String("err", err.Error()))
	} else {
		defer func() {
			if cerr := redisCache.Close(); cerr != nil {
				log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
			}
		}()
		opts = append(opts, service.WithCache(redisCache))
		health["redis"] = redisCache.Ping
	}

	// Mongo — комментарии; без него эндпойнты комментариев отвечают 500.
	mongoStore, err := mongo.New(initCtx, cfg.Mongo.URL)
	if err != nil {
		log.Warn("mongo_unavailable", slog.String("err", err.Error()))
	} else {
		defer func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			if cerr := mongoStore.Close(closeCtx); cerr != nil {
				log.Warn("mongo_close_failed", slog.String("err", cerr.Error()))
			}
		}()
		opts = append(opts, service.WithComments(mongoStore))
		health["mongo"] = mongoStore.Ping
	}

	// MinIO — аватары; без него presigned-загрузка недоступна.
	avatars, err := minio.New(initCtx, cfg)
	if err != nil {
		log.Warn("s3_unavailable", slog.String("err", err.Error()))
	} else {
		opts = append(opts, service.WithAvatars(avatars))
	}

	svc := service.New(db, cfg, opts...)

	log.Info("service_initialized")

	apiHandler := platformhttp.NewRouter(svc, platformhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "/api/v1",
		Health:   health,
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
