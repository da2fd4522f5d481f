package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-news-platform/internal/http/handlers"
	"github.com/pribylovaa/go-news-platform/internal/http/middleware"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	Health   handlers.HealthChecks
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),               // безопасно ловим паники
		middleware.RequestID(),             // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),    // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),               // prometheus-счётчики по route pattern
		middleware.Authenticate(svc),       // валидируем Bearer и кладём identity в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Служебные эндпойнты — вне BasePath и без авторизации.
	root.Get("/livez", handlers.Livez())
	root.Get("/healthz", handlers.Healthz(opts.Health))
	root.Handle("/metrics", promhttp.Handler())

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/register", h.RegisterUser)
	r.Post("/auth/login", h.LoginUser)

	// публичное чтение
	r.Get("/articles", h.ListArticles)
	r.Get("/articles/{id}", h.ArticleByID)
	r.Get("/articles/{id}/comments", h.CommentsByArticle)
	r.Get("/search", h.SearchArticles)

	// всё остальное — только с валидным токеном
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		// users
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.UserByID)
		r.Patch("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeactivateUser)
		r.Post("/users/avatar/presign", h.AvatarUploadURL)
		r.Post("/users/avatar/confirm", h.ConfirmAvatarUpload)

		// articles
		r.Post("/articles", h.CreateArticle)
		r.Patch("/articles/{id}", h.UpdateArticle)
		r.Delete("/articles/{id}", h.DeleteArticle)
		r.Post("/articles/{id}/publish", h.PublishArticle)

		// interactions
		r.Post("/interactions", h.RecordInteraction)
		r.Get("/interactions", h.ListInteractions)

		// recommendations
		r.Get("/recommendations", h.Recommendations)

		// comments
		r.Post("/articles/{id}/comments", h.CreateComment)
		r.Delete("/comments/{id}", h.DeleteComment)

		// donations
		r.Post("/donations", h.CreateDonation)
		r.Get("/donations/{id}", h.PaymentByID)
		r.Get("/donations/stats/authors/{id}", h.AuthorDonationStats)
		r.Get("/donations/stats/donor", h.DonorDonationStats)

		// analytics
		r.Get("/analytics/users/{id}", h.UserAnalytics)
		r.Get("/analytics/platform", h.PlatformStats)
	})
}
