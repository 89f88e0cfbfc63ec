// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden-id/backend/internal/config"
	"github.com/greengarden-id/backend/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		TokenExpire: time.Hour,
		Issuer:      "greengarden-api",
		Audience:    "greengarden-web",
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
		Email:  "ana@example.com",
		Role:   "customer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	first, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
	})
	require.NoError(t, err)

	second, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
	})
	require.NoError(t, err)

	ctx := context.Background()
	firstClaims, err := manager.VerifyAccessToken(ctx, first)
	require.NoError(t, err)
	secondClaims, err := manager.VerifyAccessToken(ctx, second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
}

func TestTokenManager_RejectsTamperedToken(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
		Role:   "customer",
	})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = manager.VerifyAccessToken(context.Background(), tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "ffffffffffffffffffffffffffffffff"
	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := other.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
	})
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute
	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
	})
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestTokenManager_RejectsWrongIssuer(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.Issuer = "someone-else"
	other, err := NewTokenManager(issuerCfg)
	require.NoError(t, err)

	token, err := other.CreateAccessToken(AccessTokenClaims{
		UserID: "user-123",
	})
	require.NoError(t, err)

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(
		context.Background(),
		"not.a.token",
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}
