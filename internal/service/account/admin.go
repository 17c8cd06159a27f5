package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

// ToggleStatus bans an active account or lifts the ban on a disabled one
// (admin only).
func (s *Service) ToggleStatus(ctx context.Context, targetID uuid.UUID) (*domain.Account, error) {
	if err := s.checkTarget(ctx, targetID, "ban"); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("account.ToggleStatus: %w", err)
	}

	updated, err := s.accounts.UpdateStatus(ctx, targetID, acc.Toggled())
	if err != nil {
		return nil, fmt.Errorf("account.ToggleStatus: %w", err)
	}

	s.log.InfoContext(ctx, "account status changed",
		slog.String("target_account_id", targetID.String()),
		slog.String("from", acc.ActiveStatus),
		slog.String("to", updated.ActiveStatus),
	)

	return updated, nil
}

// Delete removes an account (admin only). Keys the account's student number
// owns stay assigned to the eligible student.
func (s *Service) Delete(ctx context.Context, targetID uuid.UUID) error {
	if err := s.checkTarget(ctx, targetID, "delete"); err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("account.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("target_account_id", targetID.String()))
	return nil
}

// checkTarget requires an admin caller acting on someone else.
func (s *Service) checkTarget(ctx context.Context, targetID uuid.UUID, action string) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == targetID {
		return domain.NewValidationError("id", "cannot "+action+" yourself")
	}
	return nil
}
