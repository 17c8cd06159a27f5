package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
	"github.com/aidenliw/msl-mohawk/internal/service/listing"
)

type ingestServiceStub struct {
	importFn func(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error)
}

func (s *ingestServiceStub) Import(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error) {
	return s.importFn(ctx, kind, in)
}

type listServiceStub struct {
	lastInput listing.ListInput
	err       error

	students []domain.EligibleStudent
	products []domain.ProductSummary
	accounts []domain.Account
	uploads  []domain.Upload
	keys     []domain.StudentKey
}

func stubPage[T any](ctx context.Context, items []T, in listing.ListInput) (*paging.Page[T], error) {
	return paging.Materialize[T](ctx, paging.FromSlice(items), in.Page, in.PageSize)
}

func (s *listServiceStub) ListStudents(ctx context.Context, in listing.ListInput) (*paging.Page[domain.EligibleStudent], error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return stubPage(ctx, s.students, in)
}

func (s *listServiceStub) ListProducts(ctx context.Context, in listing.ListInput) (*paging.Page[domain.ProductSummary], error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return stubPage(ctx, s.products, in)
}

func (s *listServiceStub) ListAccounts(ctx context.Context, in listing.ListInput) (*paging.Page[domain.Account], error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return stubPage(ctx, s.accounts, in)
}

func (s *listServiceStub) ListUploads(ctx context.Context, in listing.ListInput) (*paging.Page[domain.Upload], error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return stubPage(ctx, s.uploads, in)
}

func (s *listServiceStub) MyKeys(ctx context.Context) ([]domain.StudentKey, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.keys, nil
}

type accountServiceStub struct {
	toggleFn func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *accountServiceStub) ToggleStatus(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.toggleFn(ctx, id)
}

func (s *accountServiceStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
