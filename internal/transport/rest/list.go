package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
	"github.com/aidenliw/msl-mohawk/internal/service/listing"
)

type listService interface {
	ListStudents(ctx context.Context, in listing.ListInput) (*paging.Page[domain.EligibleStudent], error)
	ListProducts(ctx context.Context, in listing.ListInput) (*paging.Page[domain.ProductSummary], error)
	ListAccounts(ctx context.Context, in listing.ListInput) (*paging.Page[domain.Account], error)
	ListUploads(ctx context.Context, in listing.ListInput) (*paging.Page[domain.Upload], error)
	MyKeys(ctx context.Context) ([]domain.StudentKey, error)
}

// ListHandler serves the paginated listings and the student key page.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

// Students lists the eligible student roster.
// GET /admin/students?page=&size=&search=&sort=
func (h *ListHandler) Students(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.log, h.svc.ListStudents, toStudentDTO)
}

// Products lists the catalog with key counters.
// GET /admin/products?page=&size=&search=&sort=
func (h *ListHandler) Products(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.log, h.svc.ListProducts, toProductDTO)
}

// Accounts lists accounts of one role.
// GET /admin/accounts?page=&size=&search=&sort=&role=
func (h *ListHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.log, h.svc.ListAccounts, toAccountDTO)
}

// Uploads lists the upload history.
// GET /admin/uploads?page=&size=
func (h *ListHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.log, h.svc.ListUploads, toUploadDTO)
}

// MyKeys lists the keys assigned to the calling student.
// GET /me/keys
func (h *ListHandler) MyKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.svc.MyKeys(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]studentKeyDTO, len(keys))
	for i, k := range keys {
		out[i] = studentKeyDTO(k)
	}
	writeJSON(w, http.StatusOK, out)
}

// serveList decodes the listing query, runs list and renders the page.
func serveList[T, D any](
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	list func(context.Context, listing.ListInput) (*paging.Page[T], error),
	toDTO func(T) D,
) {
	in, err := parseListInput(r.URL.Query())
	if err != nil {
		handleError(w, r, log, err)
		return
	}

	page, err := list(r.Context(), in)
	if err != nil {
		handleError(w, r, log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapPage(page, toDTO))
}

func parseListInput(q url.Values) (listing.ListInput, error) {
	var errs []domain.FieldError

	in := listing.ListInput{
		Search: q.Get("search"),
		SortBy: q.Get("sort"),
		Role:   q.Get("role"),
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
		} else {
			in.Page = &page
		}
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be an integer"})
		} else {
			in.PageSize = size
		}
	}

	return in, domain.NewValidationErrors(errs)
}

func mapPage[T, D any](p *paging.Page[T], toDTO func(T) D) paging.Page[D] {
	items := make([]D, len(p.Items))
	for i, it := range p.Items {
		items[i] = toDTO(it)
	}
	return paging.Page[D]{
		Items:       items,
		PageIndex:   p.PageIndex,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}
