package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	"github.com/techmart-labs/techmart-backend/internal/session"
	pkgauth "github.com/techmart-labs/techmart-backend/pkg/auth"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
)

var testJWT = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "techmart-test",
	ExpirationMinutes: 60,
}

func newTestService(t *testing.T) (Service, *session.Store) {
	t.Helper()
	store, err := session.NewStore(context.Background(), session.StoreParams{
		Snapshots: session.NewMemorySnapshots(),
		Catalog:   catalog.Default(),
	})
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		Store: store,
		JWT:   testJWT,
		Clock: func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return svc, store
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(ServiceParams{JWT: testJWT})
	require.Error(t, err)
}

func TestLoginReturnsUserAndParsableToken(t *testing.T) {
	svc, store := newTestService(t)

	dto, err := svc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", dto.User.Email)
	require.NotEmpty(t, dto.Token)

	claims, err := pkgauth.ParseSessionToken(testJWT, dto.Token)
	require.NoError(t, err)
	require.Equal(t, dto.User.ID, claims.UserID)
	require.Equal(t, "jane@example.com", claims.Email)

	require.True(t, store.State().IsAuthenticated)
}

func TestLoginSurfacesInterruptedDelay(t *testing.T) {
	store, err := session.NewStore(context.Background(), session.StoreParams{
		Snapshots: session.NewMemorySnapshots(),
		Catalog:   catalog.Default(),
		AuthDelay: time.Hour,
	})
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{Store: store, JWT: testJWT})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = svc.Login(ctx, LoginInput{Email: "a@b.c", Password: "pw"})
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeDependency, coded.Code())
}

func TestRegisterSignsInFreshUser(t *testing.T) {
	svc, store := newTestService(t)

	dto, err := svc.Register(context.Background(), RegisterInput{
		Email:     "new@example.com",
		Password:  "pw",
		FirstName: "New",
		LastName:  "Shopper",
	})
	require.NoError(t, err)
	require.Equal(t, "New", dto.User.FirstName)
	require.NotEmpty(t, dto.Token)
	require.True(t, store.State().IsAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.False(t, store.State().IsAuthenticated)

	_, ok := svc.CurrentUser(ctx)
	require.False(t, ok)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	svc, _ := newTestService(t)

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), session.UserPatch{FirstName: &name})
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeUnauthorized, coded.Code())
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)

	phone := "555-0100"
	updated, err := svc.UpdateProfile(ctx, session.UserPatch{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "555-0100", updated.Phone)
	require.Equal(t, "jane@example.com", updated.Email)
}
