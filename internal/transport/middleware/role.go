package middleware

import (
	"net/http"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

// RequireRole refuses anonymous callers with 401 and callers of any other
// role with 403. It must run after Auth.
func RequireRole(role domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if ctxutil.UserRoleFromCtx(r.Context()) != string(role) {
				writeError(w, http.StatusForbidden, string(role)+" access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
