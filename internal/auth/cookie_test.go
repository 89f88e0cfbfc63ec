// AngelaMos | 2026
// cookie_test.go

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden-id/backend/internal/config"
)

func testCookieWriter(secure bool) *CookieWriter {
	return NewCookieWriter(
		config.CookieConfig{Name: "auth_token"},
		config.JWTConfig{TokenExpire: time.Hour},
		secure,
	)
}

func TestCookieWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	testCookieWriter(true).Write(rec, "signed-token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "auth_token", cookie.Name)
	assert.Equal(t, "signed-token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestCookieWriter_WriteInsecureForDev(t *testing.T) {
	rec := httptest.NewRecorder()
	testCookieWriter(false).Write(rec, "signed-token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.False(t, cookies[0].Secure)
}

func TestCookieWriter_Clear(t *testing.T) {
	rec := httptest.NewRecorder()
	testCookieWriter(true).Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "auth_token", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.False(t, cookie.Expires.After(time.Unix(1, 0)))
	assert.True(t, cookie.HttpOnly)
}
