package controllers

import (
	"net/http"

	"github.com/techmart-labs/techmart-backend/api/responses"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// StateGet serves the full application snapshot, the same document the
// snapshot backend persists. Useful for storefront bootstrap and debugging.
func StateGet(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.State())
	}
}
