package listing

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

// MaxSearchLength bounds the free-text search term.
const MaxSearchLength = 200

// Sort keys accepted by each listing. The empty key is the default order.
var (
	StudentSorts = []string{"", "IdDESC", "FirstName", "FirstNameDESC", "LastName", "LastNameDESC", "Email", "EmailDESC"}
	ProductSorts = []string{"", "NameDESC", "TotalKey", "TotalKeyDESC", "AvailableKey", "AvailableKeyDESC", "UsedKey", "UsedKeyDESC"}
	AccountSorts = []string{"", "IdDESC", "Email", "EmailDESC", "FirstName", "FirstNameDESC", "LastName", "LastNameDESC", "ActiveStatus", "ActiveStatusDESC"}
)

// ListInput is one listing request.
type ListInput struct {
	// Page is the 1-based page index. Nil or below 1 means the first page.
	Page *int
	// PageSize is the number of items per page. Zero means the configured
	// default and paging.AllItems returns everything on one page.
	PageSize int
	Search   string
	SortBy   string
	// Role selects the accounts listed. Only ListAccounts reads it.
	Role string
}

// Validate checks the input against the page size cap and the sort keys
// the listing accepts.
func (i ListInput) Validate(maxPageSize int, sorts []string) error {
	var errs []domain.FieldError

	if i.PageSize != paging.AllItems && (i.PageSize < 0 || i.PageSize > maxPageSize) {
		errs = append(errs, domain.FieldError{
			Field:   "page_size",
			Message: fmt.Sprintf("must be between 1 and %d, or %d for all", maxPageSize, paging.AllItems),
		})
	}
	if utf8.RuneCountInString(i.Search) > MaxSearchLength {
		errs = append(errs, domain.FieldError{
			Field:   "search",
			Message: fmt.Sprintf("must be at most %d characters", MaxSearchLength),
		})
	}
	if !slices.Contains(sorts, i.SortBy) {
		errs = append(errs, domain.FieldError{
			Field:   "sort",
			Message: fmt.Sprintf("unknown sort key %q", i.SortBy),
		})
	}

	return domain.NewValidationErrors(errs)
}

func (i ListInput) search() string {
	return strings.TrimSpace(i.Search)
}
