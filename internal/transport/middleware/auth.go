package middleware

import (
	"net/http"
	"strings"

	"github.com/aidenliw/msl-mohawk/internal/auth"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth resolves a bearer token into the caller identity. Requests without a
// token pass through anonymously; an invalid token is refused with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithUserRole(ctx, id.Role)
			if id.StudentID > 0 {
				ctx = ctxutil.WithStudentID(ctx, id.StudentID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
