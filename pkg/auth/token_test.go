package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techmart-labs/techmart-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "techmart-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	token, err := MintSessionToken(cfg, now, "user-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(cfg, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "techmart-test", claims.Issuer)
}

func TestMintRejectsBadConfig(t *testing.T) {
	now := time.Now()

	_, err := MintSessionToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 1}, now, "u", "e")
	require.Error(t, err)

	cfg := testJWTConfig()
	cfg.ExpirationMinutes = 0
	_, err = MintSessionToken(cfg, now, "u", "e")
	require.Error(t, err)

	_, err = MintSessionToken(testJWTConfig(), now, "", "e")
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintSessionToken(cfg, time.Now().Add(-2*time.Hour), "user-1", "a@b.c")
	require.NoError(t, err)

	_, err = ParseSessionToken(cfg, token)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintSessionToken(cfg, time.Now(), "user-1", "a@b.c")
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = ParseSessionToken(other, token)
	require.Error(t, err)
}
