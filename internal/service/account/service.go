package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.Account, error)
}

// Service provides account moderation for administrators.
type Service struct {
	accounts accountRepo
	log      *slog.Logger
}

// NewService creates a new account service.
func NewService(log *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		accounts: accounts,
		log:      log.With("service", "account"),
	}
}
