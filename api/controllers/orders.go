package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techmart-labs/techmart-backend/api/responses"
	"github.com/techmart-labs/techmart-backend/internal/session"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// OrdersList serves the order history, newest first.
func OrdersList(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.State().Orders)
	}
}

// OrdersGet serves one order by id.
func OrdersGet(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orderID := chi.URLParam(r, "orderId")

		for _, order := range store.State().Orders {
			if order.ID == orderID {
				responses.WriteSuccess(w, order)
				return
			}
		}
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
	}
}
