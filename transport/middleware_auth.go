package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/andrifals/gasstore/application/admin"
	"github.com/andrifals/gasstore/constant"
	"github.com/andrifals/gasstore/utils/errors"
)

// AdminGateMiddleware gates /admin routes behind a valid session
// token. Storefront routes pass through untouched. This is a routing
// gate only; it makes no claim about server-side data access.
func AdminGateMiddleware(adminApp admin.AdminApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isGatedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			username, err := adminApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.AdminUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isGatedPath defines which endpoints require an admin session
func isGatedPath(path string) bool {
	if path == "/admin/login" {
		return false
	}
	return strings.HasPrefix(path, "/admin/")
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
