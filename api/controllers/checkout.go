package controllers

import (
	"net/http"
	"strings"

	"github.com/techmart-labs/techmart-backend/api/responses"
	"github.com/techmart-labs/techmart-backend/api/validators"
	"github.com/techmart-labs/techmart-backend/internal/checkout"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/enums"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

type placeOrderPayload struct {
	ShippingMethod  string          `json:"shippingMethod" validate:"required,oneof=standard express overnight"`
	ShippingAddress session.Address `json:"shippingAddress" validate:"required"`
	BillingAddress  session.Address `json:"billingAddress"`
	CardNumber      string          `json:"cardNumber" validate:"required,min=12"`
}

// CheckoutQuote prices the current cart for the requested shipping method.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		method := enums.ShippingMethod(strings.TrimSpace(r.URL.Query().Get("shippingMethod")))
		quote, err := svc.Quote(ctx, method)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutPlaceOrder runs the simulated payment and converts the cart into an
// order.
func CheckoutPlaceOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload placeOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		billing := payload.BillingAddress
		if billing == (session.Address{}) {
			billing = payload.ShippingAddress
		}

		order, err := svc.PlaceOrder(ctx, checkout.PlaceOrderInput{
			ShippingMethod:  enums.ShippingMethod(payload.ShippingMethod),
			ShippingAddress: payload.ShippingAddress,
			BillingAddress:  billing,
			CardNumber:      payload.CardNumber,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
