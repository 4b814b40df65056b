package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/skyburst/storefront-backend/api/responses"
	"github.com/skyburst/storefront-backend/pkg/config"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/redis"
)

const envHeader = "X-Skyburst-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness, including the quote-cache connection.
func HealthReady(cfg *config.Config, logg *logger.Logger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{"redis": "ok"}
		status := http.StatusOK
		overall := "ready"

		if cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cache.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "redis readiness check failed", err)
				}
				checks["redis"] = "unavailable"
				status = http.StatusServiceUnavailable
				overall = "degraded"
			}
		}

		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": overall,
			"checks": checks,
		})
	}
}
