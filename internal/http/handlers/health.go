package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthChecks — именованные проверки зависимостей для /healthz.
type HealthChecks map[string]func(context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Livez — liveness-проба: процесс жив и отвечает.
func Livez() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// Healthz — readiness-проба: опрашивает зависимости (Postgres, Redis, Mongo).
// Любая недоступная зависимость переводит ответ в 503.
func Healthz(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status: "ok",
			Checks: make(map[string]string, len(checks)),
		}

		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		writeJSON(w, status, resp)
	}
}
