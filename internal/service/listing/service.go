package listing

import (
	"context"
	"log/slog"

	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

type studentRepo interface {
	Query(f domain.StudentFilter) paging.Query[domain.EligibleStudent]
}

type productRepo interface {
	Query(f domain.ProductFilter) paging.Query[domain.ProductSummary]
}

type accountRepo interface {
	Query(f domain.AccountFilter) paging.Query[domain.Account]
}

type uploadRepo interface {
	Query() paging.Query[domain.Upload]
}

type keyRepo interface {
	ListByStudent(ctx context.Context, studentID int) ([]domain.StudentKey, error)
}

// Service serves the paginated admin listings and the student key page.
type Service struct {
	students studentRepo
	products productRepo
	accounts accountRepo
	uploads  uploadRepo
	keys     keyRepo
	cfg      config.ListingConfig
	log      *slog.Logger
}

// NewService creates a new listing service.
func NewService(
	log *slog.Logger,
	students studentRepo,
	products productRepo,
	accounts accountRepo,
	uploads uploadRepo,
	keys keyRepo,
	cfg config.ListingConfig,
) *Service {
	return &Service{
		students: students,
		products: products,
		accounts: accounts,
		uploads:  uploads,
		keys:     keys,
		cfg:      cfg,
		log:      log.With("service", "listing"),
	}
}
