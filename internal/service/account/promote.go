package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// Promote makes the account with the given email an administrator. It
// bootstraps the first admin from mslctl and is not reachable over HTTP,
// so it carries no caller check.
func (s *Service) Promote(ctx context.Context, email string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	acc, err := s.accounts.UpdateRoleByEmail(ctx, email, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("account.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "account promoted",
		slog.String("target_account_id", acc.ID.String()),
		slog.String("email", acc.Email),
	)
	return acc, nil
}
