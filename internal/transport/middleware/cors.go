package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aidenliw/msl-mohawk/internal/config"
)

// CORS lets the admin and student portals call the API from their own
// origins. Allowed origins are echoed back, never "*", so credentialed
// requests keep working with a wildcard configuration. A preflight is an
// OPTIONS request carrying Access-Control-Request-Method; it is answered
// here and never reaches the router.
func CORS(cfg config.CORSConfig) Middleware {
	allowed, wildcard := originSet(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (wildcard || allowed[origin]) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originSet splits a comma-separated origin list. The second result is true
// when "*" is present.
func originSet(raw string) (map[string]bool, bool) {
	set := make(map[string]bool)
	wildcard := false
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			set[o] = true
		}
	}
	return set, wildcard
}
