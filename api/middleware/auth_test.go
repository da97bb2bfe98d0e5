package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/techmart-labs/techmart-backend/pkg/auth"
	"github.com/techmart-labs/techmart-backend/pkg/config"
)

var testJWT = config.JWTConfig{
	Secret:            "secret",
	Issuer:            "issuer",
	ExpirationMinutes: 60,
}

func protected(t *testing.T) http.Handler {
	t.Helper()
	return Auth(testJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := UserIDFromContext(r.Context()); got != "1" {
			t.Fatalf("expected user id in context, got %q", got)
		}
		if got := EmailFromContext(r.Context()); got != "jane@example.com" {
			t.Fatalf("expected email in context, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	protected(t).ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	protected(t).ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, err := pkgAuth.MintSessionToken(testJWT, time.Now(), "1", "jane@example.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	protected(t).ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
}
