package listing

import (
	"context"
	"fmt"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

// ListStudents returns one page of the eligible student roster (admin only).
func (s *Service) ListStudents(ctx context.Context, in ListInput) (*paging.Page[domain.EligibleStudent], error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(s.cfg.MaxPageSize, StudentSorts); err != nil {
		return nil, err
	}

	q := s.students.Query(domain.StudentFilter{Search: in.search(), SortBy: in.SortBy})
	page, err := paging.Materialize(ctx, q, in.Page, s.pageSize(in))
	if err != nil {
		return nil, fmt.Errorf("listing.ListStudents: %w", err)
	}
	return page, nil
}

// ListProducts returns one page of the catalog with key counters (admin only).
func (s *Service) ListProducts(ctx context.Context, in ListInput) (*paging.Page[domain.ProductSummary], error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(s.cfg.MaxPageSize, ProductSorts); err != nil {
		return nil, err
	}

	q := s.products.Query(domain.ProductFilter{Search: in.search(), SortBy: in.SortBy})
	page, err := paging.Materialize(ctx, q, in.Page, s.pageSize(in))
	if err != nil {
		return nil, fmt.Errorf("listing.ListProducts: %w", err)
	}
	return page, nil
}

// ListAccounts returns one page of accounts of a single role (admin only).
// An empty or unknown role lists students.
func (s *Service) ListAccounts(ctx context.Context, in ListInput) (*paging.Page[domain.Account], error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(s.cfg.MaxPageSize, AccountSorts); err != nil {
		return nil, err
	}

	q := s.accounts.Query(domain.AccountFilter{
		Search: in.search(),
		SortBy: in.SortBy,
		Role:   domain.ParseRole(in.Role),
	})
	page, err := paging.Materialize(ctx, q, in.Page, s.pageSize(in))
	if err != nil {
		return nil, fmt.Errorf("listing.ListAccounts: %w", err)
	}
	return page, nil
}

// ListUploads returns one page of the upload history, newest first (admin only).
// Search and SortBy are not supported.
func (s *Service) ListUploads(ctx context.Context, in ListInput) (*paging.Page[domain.Upload], error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(s.cfg.MaxPageSize, []string{""}); err != nil {
		return nil, err
	}

	page, err := paging.Materialize(ctx, s.uploads.Query(), in.Page, s.pageSize(in))
	if err != nil {
		return nil, fmt.Errorf("listing.ListUploads: %w", err)
	}
	return page, nil
}

// MyKeys returns the keys assigned to the calling student.
func (s *Service) MyKeys(ctx context.Context) ([]domain.StudentKey, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrForbidden
	}

	keys, err := s.keys.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing.MyKeys: %w", err)
	}
	return keys, nil
}

func (s *Service) pageSize(in ListInput) int {
	if in.PageSize == 0 {
		return s.cfg.DefaultPageSize
	}
	return in.PageSize
}
