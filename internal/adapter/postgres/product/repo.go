// Package product implements the product catalog repository using PostgreSQL.
package product

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type summaryRow struct {
	ID                uuid.UUID `db:"id"`
	Name              string    `db:"name"`
	QuantityLimit     int       `db:"quantity_limit"`
	ActiveStatus      string    `db:"active_status"`
	DownloadLink      *string   `db:"download_link"`
	CreatedAt         time.Time `db:"created_at"`
	KeyCount          int       `db:"key_count"`
	RemainingKeyCount int       `db:"remaining_key_count"`
	UsedKeyCount      int       `db:"used_key_count"`
}

func toSummary(r summaryRow) domain.ProductSummary {
	return domain.ProductSummary{
		Product: domain.Product{
			ID:            r.ID,
			Name:          r.Name,
			QuantityLimit: r.QuantityLimit,
			ActiveStatus:  r.ActiveStatus,
			DownloadLink:  r.DownloadLink,
			CreatedAt:     r.CreatedAt,
		},
		KeyCount:          r.KeyCount,
		RemainingKeyCount: r.RemainingKeyCount,
		UsedKeyCount:      r.UsedKeyCount,
	}
}

// UpsertBatch registers products using pgx.Batch. Names already in the
// catalog are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) UpsertBatch(ctx context.Context, products []domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range products {
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		batch.Queue(
			`INSERT INTO products (id, name, quantity_limit, active_status, download_link)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (name) DO NOTHING`,
			id, p.Name, p.QuantityLimit, p.ActiveStatus, p.DownloadLink,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "product", products[i].Name)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// Query returns a deferred listing of products with their key counters.
// Search matches the product name case-insensitively.
func (r *Repo) Query(f domain.ProductFilter) paging.Query[domain.ProductSummary] {
	stmt := postgres.Builder().
		Select(
			"p.id", "p.name", "p.quantity_limit", "p.active_status", "p.download_link", "p.created_at",
			"count(k.id) AS key_count",
			"count(k.id) FILTER (WHERE k.owner_student_id IS NULL) AS remaining_key_count",
			"count(k.id) FILTER (WHERE k.owner_student_id IS NOT NULL) AS used_key_count",
		).
		From("products p").
		LeftJoin("product_keys k ON k.product_id = p.id").
		GroupBy("p.id")

	if search := strings.TrimSpace(f.Search); search != "" {
		stmt = stmt.Where(squirrel.ILike{"p.name": postgres.ContainsPattern(search)})
	}

	return postgres.NewSelectQuery(r.db, "product", stmt, orderBy(f.SortBy), toSummary)
}

// orderBy maps a listing sort key to ORDER BY terms. Unknown keys fall back
// to ascending name.
func orderBy(sortBy string) []string {
	switch sortBy {
	case "NameDESC":
		return []string{"p.name DESC"}
	case "TotalKey":
		return []string{"key_count ASC", "p.name ASC"}
	case "TotalKeyDESC":
		return []string{"key_count DESC", "p.name ASC"}
	case "AvailableKey":
		return []string{"remaining_key_count ASC", "p.name ASC"}
	case "AvailableKeyDESC":
		return []string{"remaining_key_count DESC", "p.name ASC"}
	case "UsedKey":
		return []string{"used_key_count ASC", "p.name ASC"}
	case "UsedKeyDESC":
		return []string{"used_key_count DESC", "p.name ASC"}
	default:
		return []string{"p.name ASC"}
	}
}
