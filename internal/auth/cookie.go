// AngelaMos | 2026
// cookie.go

package auth

import (
	"net/http"
	"time"

	"github.com/greengarden-id/backend/internal/config"
)

// CookieWriter is the session cookie carrier: it writes the signed token
// into an HTTP-only, SameSite=Strict cookie scoped to the whole site, and
// clears it with an epoch expiry on logout.
type CookieWriter struct {
	name   string
	domain string
	ttl    time.Duration
	secure bool
}

func NewCookieWriter(
	cookieCfg config.CookieConfig,
	jwtCfg config.JWTConfig,
	secure bool,
) *CookieWriter {
	return &CookieWriter{
		name:   cookieCfg.Name,
		domain: cookieCfg.Domain,
		ttl:    jwtCfg.TokenExpire,
		secure: secure,
	}
}

func (c *CookieWriter) Name() string {
	return c.name
}

func (c *CookieWriter) Write(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   int(c.ttl.Seconds()),
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c *CookieWriter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
