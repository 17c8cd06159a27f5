// Package productkey implements the license key repository using PostgreSQL.
package productkey

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// Repo provides license key persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product key repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type productRef struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type studentKeyRow struct {
	Product      string  `db:"product"`
	Key          string  `db:"key_value"`
	DownloadLink *string `db:"download_link"`
}

// InsertBatch stores unassigned keys. Product names are resolved against the
// catalog first; pairs naming an unknown product are reported by index and
// skipped. Keys already stored for the same product count as duplicates.
func (r *Repo) InsertBatch(ctx context.Context, pairs []domain.KeyPair) (domain.KeyInsertResult, error) {
	var res domain.KeyInsertResult
	if len(pairs) == 0 {
		return res, nil
	}

	ids, err := r.resolveProducts(ctx, pairs)
	if err != nil {
		return res, err
	}

	batch := &pgx.Batch{}
	queued := make([]int, 0, len(pairs))
	for i, p := range pairs {
		productID, ok := ids[p.Product]
		if !ok {
			res.UnknownProduct = append(res.UnknownProduct, i)
			continue
		}
		batch.Queue(
			`INSERT INTO product_keys (id, product_id, key_value)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (product_id, key_value) DO NOTHING`,
			uuid.New(), productID, p.Key,
		)
		queued = append(queued, i)
	}
	if batch.Len() == 0 {
		return res, nil
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	for _, i := range queued {
		tag, err := results.Exec()
		if err != nil {
			return res, postgres.MapError(err, "product_key", pairs[i].Product)
		}
		if tag.RowsAffected() == 0 {
			res.Duplicates++
			continue
		}
		res.Inserted++
	}

	return res, nil
}

func (r *Repo) resolveProducts(ctx context.Context, pairs []domain.KeyPair) (map[string]uuid.UUID, error) {
	seen := make(map[string]struct{}, len(pairs))
	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Product]; ok {
			continue
		}
		seen[p.Product] = struct{}{}
		names = append(names, p.Product)
	}

	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("products").
		Where(squirrel.Eq{"name": names}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("product_key: build resolve: %w", err)
	}

	var refs []productRef
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &refs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product", "resolve")
	}

	ids := make(map[string]uuid.UUID, len(refs))
	for _, ref := range refs {
		ids[ref.Name] = ref.ID
	}
	return ids, nil
}

// ListByStudent returns the keys assigned to a student, ordered by product name.
func (r *Repo) ListByStudent(ctx context.Context, studentID int) ([]domain.StudentKey, error) {
	sql, args, err := postgres.Builder().
		Select("p.name AS product", "k.key_value", "p.download_link").
		From("product_keys k").
		Join("products p ON p.id = k.product_id").
		Where(squirrel.Eq{"k.owner_student_id": studentID}).
		OrderBy("p.name ASC", "k.key_value ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("product_key: build list: %w", err)
	}

	var rows []studentKeyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "product_key", studentID)
	}

	keys := make([]domain.StudentKey, len(rows))
	for i, row := range rows {
		keys[i] = domain.StudentKey(row)
	}
	return keys, nil
}
