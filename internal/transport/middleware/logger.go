package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

// probePaths are polled by the orchestrator and logged at Debug only.
var probePaths = map[string]bool{"/live": true, "/ready": true}

// Logger writes one "http.request" record per request with the caller
// identifiers found in the context. Place it after Auth to see them.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			level := requestLevel(r.URL.Path, sw.status)
			if !logger.Enabled(ctx, level) {
				return
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}
			if studentID, ok := ctxutil.StudentIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.Int("student_id", studentID))
			}

			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// requestLevel: server errors are Error; refused uploads (413, 429) are Warn.
func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests, status == http.StatusRequestEntityTooLarge:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
