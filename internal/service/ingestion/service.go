package ingestion

import (
	"context"
	"log/slog"

	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/domain"
)

type studentRepo interface {
	UpsertBatch(ctx context.Context, students []domain.EligibleStudent) (int, error)
}

type productRepo interface {
	UpsertBatch(ctx context.Context, products []domain.Product) (int, error)
}

type keyRepo interface {
	InsertBatch(ctx context.Context, pairs []domain.KeyPair) (domain.KeyInsertResult, error)
}

type uploadRepo interface {
	Create(ctx context.Context, u domain.Upload) (domain.Upload, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service turns uploaded files into stored students, products and keys.
type Service struct {
	students studentRepo
	products productRepo
	keys     keyRepo
	uploads  uploadRepo
	tx       txManager
	cfg      config.UploadConfig
	log      *slog.Logger
}

// NewService creates a new ingestion service.
func NewService(
	log *slog.Logger,
	students studentRepo,
	products productRepo,
	keys keyRepo,
	uploads uploadRepo,
	tx txManager,
	cfg config.UploadConfig,
) *Service {
	return &Service{
		students: students,
		products: products,
		keys:     keys,
		uploads:  uploads,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "ingestion"),
	}
}
