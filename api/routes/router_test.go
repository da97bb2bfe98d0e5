package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authsvc "github.com/techmart-labs/techmart-backend/internal/auth"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	checkoutsvc "github.com/techmart-labs/techmart-backend/internal/checkout"
	productsvc "github.com/techmart-labs/techmart-backend/internal/products"
	"github.com/techmart-labs/techmart-backend/internal/session"
	pkgAuth "github.com/techmart-labs/techmart-backend/pkg/auth"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"github.com/techmart-labs/techmart-backend/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
	}
}

type testHarness struct {
	router http.Handler
	store  *session.Store
	cfg    *config.Config
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	cat := catalog.Default()

	store, err := session.NewStore(context.Background(), session.StoreParams{
		Snapshots: session.NewMemorySnapshots(),
		Catalog:   cat,
	})
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	auth, err := authsvc.NewService(authsvc.ServiceParams{Store: store, JWT: cfg.JWT})
	if err != nil {
		t.Fatalf("build auth service: %v", err)
	}
	products, err := productsvc.NewService(productsvc.ServiceParams{Catalog: cat})
	if err != nil {
		t.Fatalf("build products service: %v", err)
	}
	checkout, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{Store: store, Pricing: cfg.Checkout})
	if err != nil {
		t.Fatalf("build checkout service: %v", err)
	}

	router := NewRouter(RouterParams{
		Config:   cfg,
		Logger:   logg,
		Catalog:  cat,
		Store:    store,
		Auth:     auth,
		Products: products,
		Checkout: checkout,
	})
	return &testHarness{router: router, store: store, cfg: cfg}
}

func (h *testHarness) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	h.router.ServeHTTP(resp, req)
	return resp
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintSessionToken(cfg.JWT, time.Now(), "1", "jane@example.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	h := newTestHarness(t)
	resp := h.do(t, http.MethodGet, "/health/live", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if env := resp.Header().Get("X-TechMart-Env"); env != "test" {
		t.Fatalf("unexpected env header %q", env)
	}
}

func TestHealthReadyWithoutBackendPinger(t *testing.T) {
	h := newTestHarness(t)
	resp := h.do(t, http.MethodGet, "/health/ready", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProductsListAndFilters(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodGet, "/api/v1/products/?q=iphone", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body %s", resp.Code, resp.Body.String())
	}

	resp = h.do(t, http.MethodGet, "/api/v1/products/?sort=bogus", "", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad sort got %d", resp.Code)
	}

	resp = h.do(t, http.MethodGet, "/api/v1/products/9999", "", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product got %d", resp.Code)
	}
}

func TestCartFlow(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":1,"quantity":2}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body %s", resp.Code, resp.Body.String())
	}

	resp = h.do(t, http.MethodPost, "/api/v1/cart/items", `{"productId":9999}`, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product got %d", resp.Code)
	}

	resp = h.do(t, http.MethodGet, "/api/v1/cart/", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	cart := envelope.Data.(map[string]any)
	if total := cart["total"].(float64); total != 2398 {
		t.Fatalf("expected total 2398 got %v", total)
	}

	resp = h.do(t, http.MethodPatch, "/api/v1/cart/items/1", `{"quantity":0}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if items := h.store.State().CartItems; len(items) != 0 {
		t.Fatalf("expected empty cart got %d items", len(items))
	}
}

func TestWishlistFlow(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodPost, "/api/v1/wishlist/items", `{"productId":5}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	resp = h.do(t, http.MethodDelete, "/api/v1/wishlist/items/5", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if h.store.IsInWishlist(5) {
		t.Fatalf("expected product removed from wishlist")
	}
}

func TestOrdersRequireToken(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodGet, "/api/v1/orders", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}

	resp = h.do(t, http.MethodGet, "/api/v1/orders", "", buildToken(t, h.cfg))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"jane@example.com","password":"pw"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body %s", resp.Code, resp.Body.String())
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["token"] == "" {
		t.Fatalf("expected a token in login response")
	}
}

func TestLoginRejectsBadPayload(t *testing.T) {
	h := newTestHarness(t)

	resp := h.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email","password":"pw"}`, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	if _, err := h.store.Login(ctx, "jane@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	product, _ := catalog.Default().FindByID(1)
	h.store.AddToCart(ctx, product, 1)

	token := buildToken(t, h.cfg)

	resp := h.do(t, http.MethodGet, "/api/v1/checkout/quote?shippingMethod=express", "", token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for quote got %d body %s", resp.Code, resp.Body.String())
	}

	body := `{"shippingMethod":"express","cardNumber":"4111111111119876","shippingAddress":{"id":"a1","type":"shipping","firstName":"Jane","lastName":"Doe","address1":"1 Main St","city":"Austin","state":"TX","zipCode":"78701","country":"US","isDefault":true}}`
	resp = h.do(t, http.MethodPost, "/api/v1/checkout", body, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for checkout got %d body %s", resp.Code, resp.Body.String())
	}

	state := h.store.State()
	if len(state.Orders) != 1 {
		t.Fatalf("expected one order got %d", len(state.Orders))
	}
	if len(state.CartItems) != 0 {
		t.Fatalf("expected cart cleared after checkout")
	}
}
