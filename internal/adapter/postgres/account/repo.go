// Package account implements read and moderation access to portal accounts.
// Accounts are created by the identity service; this repository never inserts them.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	StudentID    *int      `db:"student_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	ActiveStatus string    `db:"active_status"`
	Role         string    `db:"role"`
}

func toDomain(r row) domain.Account {
	a := domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		ActiveStatus: r.ActiveStatus,
		Role:         domain.Role(r.Role),
	}
	if r.StudentID != nil {
		a.StudentID = *r.StudentID
	}
	return a
}

var columns = []string{"id", "email", "student_id", "first_name", "last_name", "active_status", "role"}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("account: build get: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	a := toDomain(res)
	return &a, nil
}

// UpdateStatus sets the active status of an account and returns it.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Account, error) {
	sql, args, err := postgres.Builder().
		Update("accounts").
		Set("active_status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("account: build update: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	a := toDomain(res)
	return &a, nil
}

// Delete removes an account. Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("account: build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Query returns a deferred listing of accounts of f.Role (students when empty).
// Search matches the student number or, case-insensitively, the email and names.
func (r *Repo) Query(f domain.AccountFilter) paging.Query[domain.Account] {
	role := f.Role
	if role == "" {
		role = domain.RoleStudent
	}

	stmt := postgres.Builder().
		Select(columns...).
		From("accounts").
		Where(squirrel.Eq{"role": string(role)})

	if search := strings.TrimSpace(f.Search); search != "" {
		like := postgres.ContainsPattern(search)
		stmt = stmt.Where(squirrel.Or{
			squirrel.ILike{"email": like},
			squirrel.Like{"CAST(student_id AS TEXT)": like},
			squirrel.ILike{"first_name": like},
			squirrel.ILike{"last_name": like},
		})
	}

	return postgres.NewSelectQuery(r.db, "account", stmt, orderBy(f.SortBy), toDomain)
}

// orderBy maps a listing sort key to ORDER BY terms. Unknown keys fall back
// to ascending student number.
func orderBy(sortBy string) []string {
	switch sortBy {
	case "IdDESC":
		return []string{"student_id DESC NULLS LAST", "id ASC"}
	case "Email":
		return []string{"email ASC", "id ASC"}
	case "EmailDESC":
		return []string{"email DESC", "id ASC"}
	case "FirstName":
		return []string{"first_name ASC", "id ASC"}
	case "FirstNameDESC":
		return []string{"first_name DESC", "id ASC"}
	case "LastName":
		return []string{"last_name ASC", "id ASC"}
	case "LastNameDESC":
		return []string{"last_name DESC", "id ASC"}
	case "ActiveStatus":
		return []string{"active_status ASC", "id ASC"}
	case "ActiveStatusDESC":
		return []string{"active_status DESC", "id ASC"}
	default:
		return []string{"student_id ASC NULLS LAST", "id ASC"}
	}
}

// UpdateRoleByEmail sets the role of the account with the given email,
// compared case-insensitively, and returns it.
func (r *Repo) UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	sql, args, err := postgres.Builder().
		Update("accounts").
		Set("role", string(role)).
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("account: build update role: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", email)
	}

	a := toDomain(res)
	return &a, nil
}
