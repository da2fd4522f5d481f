package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

// TokenValidator проверяет access-токен и возвращает личность вызывающего.
// Реализуется сервисным слоем.
type TokenValidator interface {
	ValidateAccessToken(token string) (service.Identity, error)
}

type identityKey struct{}

// IdentityFrom достаёт проверенную личность вызывающего из контекста.
// Второе значение false — запрос анонимный.
func IdentityFrom(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(service.Identity)
	return id, ok
}

// Authenticate извлекает Bearer-токен из Authorization, валидирует его
// и кладёт service.Identity в контекст.
//
// Отсутствие заголовка — не ошибка: запрос продолжается анонимным,
// а обязательность личности навешивается отдельно через RequireAuth.
// Предъявленный, но невалидный токен — всегда 401.
func Authenticate(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			id, err := v.ValidateAccessToken(token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отклоняет анонимные запросы (401).
// Навешивается на маршруты, где личность вызывающего обязательна.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFrom(r.Context()); !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
