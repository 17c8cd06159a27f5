package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string              `json:"error"`
	Kind   string              `json:"kind,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors to HTTP statuses. Anything unmapped is
// logged and answered with 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve      *domain.ValidationError
		tooBig  *http.MaxBytesError
		parsing = ingest.Kind(err)
	)

	switch {
	case parsing == ingest.KindInvalidContentType:
		writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: err.Error(), Kind: parsing})
	case errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
	case parsing == ingest.KindStreamReadFailure:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: parsing})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
