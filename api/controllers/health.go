package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/techmart-labs/techmart-backend/api/responses"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// Pinger is the readiness surface a storage backend exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TechMart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the configured snapshot backend. A nil pinger means the
// backend is in-memory and always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TechMart-Env", cfg.App.Env)

		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot backend unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
