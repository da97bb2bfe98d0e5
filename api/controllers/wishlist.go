package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techmart-labs/techmart-backend/api/responses"
	"github.com/techmart-labs/techmart-backend/api/validators"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	"github.com/techmart-labs/techmart-backend/internal/session"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

type addWishlistItemPayload struct {
	ProductID int `json:"productId" validate:"required"`
}

// WishlistGet serves the joined wishlist.
func WishlistGet(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.WishlistLines())
	}
}

// WishlistAddItem likes a product. Re-adding an existing entry is a no-op.
func WishlistAddItem(store *session.Store, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload addWishlistItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if _, ok := cat.FindByID(payload.ProductID); !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		store.AddToWishlist(ctx, payload.ProductID)
		responses.WriteSuccessStatus(w, http.StatusCreated, store.WishlistLines())
	}
}

// WishlistRemoveItem unlikes a product.
func WishlistRemoveItem(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be numeric"))
			return
		}

		store.RemoveFromWishlist(ctx, productID)
		responses.WriteSuccess(w, store.WishlistLines())
	}
}
