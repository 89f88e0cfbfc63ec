// AngelaMos | 2026
// guard_test.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*AccessTokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func guardedServer(verifier TokenVerifier) http.Handler {
	var handler http.Handler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)
	return RouteGuard(verifier, "auth_token")(handler)
}

func get(
	handler http.Handler,
	path, token string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouteGuard_PublicPathPassesThrough(t *testing.T) {
	handler := guardedServer(&stubVerifier{err: errors.New("never called")})

	rec := get(handler, "/plants", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_CustomerPathWithoutToken(t *testing.T) {
	handler := guardedServer(&stubVerifier{})

	rec := get(handler, "/customer/orders", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRouteGuard_CustomerPathWithInvalidToken(t *testing.T) {
	handler := guardedServer(&stubVerifier{err: errors.New("bad token")})

	rec := get(handler, "/customer/orders", "garbage")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRouteGuard_CustomerPathWithValidToken(t *testing.T) {
	handler := guardedServer(&stubVerifier{
		claims: &AccessTokenClaims{UserID: "u1", Role: "customer"},
	})

	rec := get(handler, "/customer/orders", "valid")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_AdminPathAsCustomer(t *testing.T) {
	handler := guardedServer(&stubVerifier{
		claims: &AccessTokenClaims{UserID: "u1", Role: "customer"},
	})

	rec := get(handler, "/admin/dashboard", "valid")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouteGuard_AdminPathAsAdmin(t *testing.T) {
	handler := guardedServer(&stubVerifier{
		claims: &AccessTokenClaims{UserID: "u1", Role: "admin"},
	})

	rec := get(handler, "/admin/dashboard", "valid")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_AdminPathWithoutToken(t *testing.T) {
	handler := guardedServer(&stubVerifier{})

	rec := get(handler, "/admin/dashboard", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRouteGuard_AttachesClaims(t *testing.T) {
	var seenUserID string
	var handler http.Handler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			seenUserID = GetUserID(r.Context())
			w.WriteHeader(http.StatusOK)
		},
	)
	guarded := RouteGuard(&stubVerifier{
		claims: &AccessTokenClaims{UserID: "u42", Role: "customer"},
	}, "auth_token")(handler)

	rec := get(guarded, "/customer/profile", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u42", seenUserID)
}

func TestExtractToken_CookieBeatsHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", ExtractToken(req, "auth_token"))
}

func TestExtractToken_BearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-header", ExtractToken(req, "auth_token"))
}

func TestExtractToken_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	assert.Empty(t, ExtractToken(req, "auth_token"))
}
