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

type addCartItemPayload struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

type updateCartItemPayload struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items []session.CartLine `json:"items"`
	Total float64            `json:"total"`
}

// CartGet serves the joined cart with its running total.
func CartGet(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartResponse{
			Items: store.CartLines(),
			Total: store.CartTotal(),
		})
	}
}

// CartAddItem merges a product into the cart. The product must resolve
// against the catalog.
func CartAddItem(store *session.Store, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, ok := cat.FindByID(payload.ProductID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		store.AddToCart(ctx, product, payload.Quantity)
		responses.WriteSuccessStatus(w, http.StatusCreated, cartResponse{
			Items: store.CartLines(),
			Total: store.CartTotal(),
		})
	}
}

// CartUpdateItem replaces a line quantity; zero or below removes the line.
func CartUpdateItem(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be numeric"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		store.UpdateCartQuantity(ctx, productID, payload.Quantity)
		responses.WriteSuccess(w, cartResponse{
			Items: store.CartLines(),
			Total: store.CartTotal(),
		})
	}
}

// CartRemoveItem drops one line from the cart.
func CartRemoveItem(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be numeric"))
			return
		}

		store.RemoveFromCart(ctx, productID)
		responses.WriteSuccess(w, cartResponse{
			Items: store.CartLines(),
			Total: store.CartTotal(),
		})
	}
}

// CartClear empties the cart.
func CartClear(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ClearCart(r.Context())
		responses.WriteSuccess(w, cartResponse{
			Items: []session.CartLine{},
			Total: 0,
		})
	}
}
