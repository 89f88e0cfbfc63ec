// AngelaMos | 2026
// guard.go

package middleware

import (
	"net/http"
	"strings"
)

const (
	customerPrefix = "/customer/"
	adminPrefix    = "/admin/"

	loginPath = "/login"
	homePath  = "/"
)

// RouteGuard protects the server-rendered page prefixes. Unauthenticated
// visitors to /customer/* or /admin/* are redirected to the login page;
// authenticated non-admins visiting /admin/* are sent home. This is an
// edge check only: API routes behind /v1 re-verify identity and role
// themselves.
func RouteGuard(
	verifier TokenVerifier,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			needsAuth := hasPrefix(path, customerPrefix)
			needsAdmin := hasPrefix(path, adminPrefix)

			if !needsAuth && !needsAdmin {
				next.ServeHTTP(w, r)
				return
			}

			token := ExtractToken(r, cookieName)
			if token == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			if needsAdmin && claims.Role != "admin" {
				http.Redirect(w, r, homePath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func hasPrefix(path, prefix string) bool {
	return strings.HasPrefix(path, prefix) ||
		path == strings.TrimSuffix(prefix, "/")
}
