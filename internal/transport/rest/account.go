package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

type accountService interface {
	ToggleStatus(ctx context.Context, targetID uuid.UUID) (*domain.Account, error)
	Delete(ctx context.Context, targetID uuid.UUID) error
}

// AccountHandler serves account moderation endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

// ToggleBan disables an active account or re-enables a disabled one.
// POST /admin/accounts/{id}/ban
func (h *AccountHandler) ToggleBan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	acc, err := h.svc.ToggleStatus(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountDTO(*acc))
}

// Delete removes an account.
// DELETE /admin/accounts/{id}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
