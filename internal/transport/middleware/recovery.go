package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged JSON 500. http.ErrAbortHandler
// is re-raised so net/http can drop the connection quietly, as it does when a
// client abandons an upload mid-stream.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				ctx := r.Context()
				attrs := []slog.Attr{
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
				}
				if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
					attrs = append(attrs, slog.String("user_id", userID.String()))
				}
				logger.LogAttrs(ctx, slog.LevelError, "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
