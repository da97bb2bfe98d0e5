package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	"github.com/techmart-labs/techmart-backend/pkg/enums"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(context.Background(), session.StoreParams{
		Snapshots: session.NewMemorySnapshots(),
		Catalog:   catalog.Default(),
	})
	require.NoError(t, err)
	return store
}

func newTestService(t *testing.T, store *session.Store) Service {
	t.Helper()
	seq := 0
	svc, err := NewService(ServiceParams{
		Store:   store,
		Pricing: config.CheckoutConfig{TaxRate: 0.08},
		Clock:   func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string {
			seq++
			return fmt.Sprintf("item-%d", seq)
		},
	})
	require.NoError(t, err)
	return svc
}

func mustProduct(t *testing.T, id int) catalog.Product {
	t.Helper()
	p, ok := catalog.Default().FindByID(id)
	require.True(t, ok)
	return p
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestShippingRates(t *testing.T) {
	require.True(t, ShippingRate(enums.ShippingStandard).IsZero())
	require.Equal(t, "15", ShippingRate(enums.ShippingExpress).String())
	require.Equal(t, "35", ShippingRate(enums.ShippingOvernight).String())
	require.True(t, ShippingRate(enums.ShippingMethod("drone")).IsZero())
}

func TestQuotePricesCart(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	store.AddToCart(ctx, mustProduct(t, 1), 1)  // 1199
	store.AddToCart(ctx, mustProduct(t, 16), 2) // 99 each

	quote, err := svc.Quote(ctx, enums.ShippingExpress)
	require.NoError(t, err)
	require.Len(t, quote.Items, 2)
	require.Equal(t, 1397.0, quote.Subtotal)
	require.Equal(t, 111.76, quote.Tax)
	require.Equal(t, 15.0, quote.Shipping)
	require.Equal(t, 1523.76, quote.Total)
}

func TestQuoteEmptyCart(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)

	quote, err := svc.Quote(context.Background(), enums.ShippingStandard)
	require.NoError(t, err)
	require.Empty(t, quote.Items)
	require.Zero(t, quote.Total)
}

func TestQuoteRejectsUnknownMethod(t *testing.T) {
	svc := newTestService(t, newTestStore(t))

	_, err := svc.Quote(context.Background(), enums.ShippingMethod("drone"))
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	store.AddToCart(ctx, mustProduct(t, 1), 1)

	_, err := svc.PlaceOrder(ctx, PlaceOrderInput{ShippingMethod: enums.ShippingStandard})
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeUnauthorized, coded.Code())
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := store.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, PlaceOrderInput{ShippingMethod: enums.ShippingStandard})
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestPlaceOrderConvertsCart(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := store.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	store.AddToCart(ctx, mustProduct(t, 1), 2) // 1199 each

	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{
		ShippingMethod: enums.ShippingOvernight,
		CardNumber:     "4111 1111 1111 9876",
		ShippingAddress: session.Address{
			FirstName: "Jane", Address1: "1 Main St", City: "Austin", State: "TX", ZipCode: "78701", Country: "US",
		},
	})
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusProcessing, order.Status)
	require.Equal(t, "**** **** **** 9876", order.PaymentMethod)
	require.Len(t, order.Items, 1)
	require.Equal(t, "iPhone 15 Pro Max", order.Items[0].ProductName)
	require.Equal(t, 2398.0, order.Items[0].Total)
	require.Equal(t, 2398.0, order.Subtotal)
	require.Equal(t, 191.84, order.Tax)
	require.Equal(t, 35.0, order.Shipping)
	require.Equal(t, 2624.84, order.Total)
	require.Equal(t, "Austin", order.ShippingAddress.City)

	state := store.State()
	require.Empty(t, state.CartItems)
	require.Len(t, state.Orders, 1)
	require.Equal(t, order.ID, state.Orders[0].ID)
}

func TestPlaceOrderSkipsUnresolvableLines(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := store.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	store.AddToCart(ctx, catalog.Product{ID: 4242, Price: 500}, 1)
	store.AddToCart(ctx, mustProduct(t, 16), 1) // 99

	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{ShippingMethod: enums.ShippingStandard})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, 99.0, order.Subtotal)
}

func TestPlaceOrderHonorsContextCancellation(t *testing.T) {
	store := newTestStore(t)
	svc, err := NewService(ServiceParams{
		Store:   store,
		Pricing: config.CheckoutConfig{TaxRate: 0.08},
		Delay:   time.Hour,
	})
	require.NoError(t, err)

	_, err = store.Login(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err)
	store.AddToCart(context.Background(), mustProduct(t, 1), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = svc.PlaceOrder(ctx, PlaceOrderInput{ShippingMethod: enums.ShippingStandard})
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeDependency, coded.Code())

	// Nothing was committed.
	require.Len(t, store.State().CartItems, 1)
	require.Empty(t, store.State().Orders)
}

func TestMaskCard(t *testing.T) {
	require.Equal(t, "**** **** **** 9876", MaskCard("4111-1111-1111-9876"))
	require.Equal(t, "**** **** **** 1234", MaskCard(""))
	require.Equal(t, "**** **** **** 1234", MaskCard("42"))
}
