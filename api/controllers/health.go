package controllers

import (
	"context"
	"net/http"

	"github.com/bloomcart/checkout-backend/api/responses"
	"github.com/bloomcart/checkout-backend/pkg/config"
	pkgerrors "github.com/bloomcart/checkout-backend/pkg/errors"
	"github.com/bloomcart/checkout-backend/pkg/logger"
)

// Pinger is the health check surface of a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BloomCart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BloomCart-Env", cfg.App.Env)

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
