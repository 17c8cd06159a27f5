// Package upload stores the audit trail of processed upload files.
package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

// Repo provides upload audit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new upload repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Kind      string    `db:"kind"`
	FileName  string    `db:"file_name"`
	Accepted  int       `db:"accepted"`
	Persisted int       `db:"persisted"`
	Rejected  int       `db:"rejected"`
	CreatedAt time.Time `db:"created_at"`
}

func toDomain(r row) domain.Upload {
	return domain.Upload{
		ID:        r.ID,
		Kind:      domain.UploadKind(r.Kind),
		FileName:  r.FileName,
		Accepted:  r.Accepted,
		Persisted: r.Persisted,
		Rejected:  r.Rejected,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts an upload record and returns it with its creation time.
func (r *Repo) Create(ctx context.Context, u domain.Upload) (domain.Upload, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert("uploads").
		Columns("id", "kind", "file_name", "accepted", "persisted", "rejected").
		Values(u.ID, string(u.Kind), u.FileName, u.Accepted, u.Persisted, u.Rejected).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Upload{}, fmt.Errorf("upload: build insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&u.CreatedAt); err != nil {
		return domain.Upload{}, postgres.MapError(err, "upload", u.ID)
	}
	return u, nil
}

// Query returns a deferred listing of uploads, newest first.
func (r *Repo) Query() paging.Query[domain.Upload] {
	stmt := postgres.Builder().
		Select("id", "kind", "file_name", "accepted", "persisted", "rejected", "created_at").
		From("uploads")
	return postgres.NewSelectQuery(r.db, "upload", stmt, []string{"created_at DESC", "id ASC"}, toDomain)
}
