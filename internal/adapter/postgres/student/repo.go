// Package student implements the eligible-student repository using PostgreSQL.
package student

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

// Repo provides eligible-student persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new student repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	StudentID int       `db:"student_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDomain(r row) domain.EligibleStudent {
	return domain.EligibleStudent(r)
}

var columns = []string{"student_id", "first_name", "last_name", "email", "created_at", "updated_at"}

// UpsertBatch registers students using pgx.Batch. A student number that is
// already on the roster gets its name and email replaced.
// Returns the number of rows written.
func (r *Repo) UpsertBatch(ctx context.Context, students []domain.EligibleStudent) (int, error) {
	if len(students) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range students {
		batch.Queue(
			`INSERT INTO eligible_students (student_id, first_name, last_name, email)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (student_id) DO UPDATE
			 SET first_name = EXCLUDED.first_name,
			     last_name  = EXCLUDED.last_name,
			     email      = EXCLUDED.email,
			     updated_at = now()`,
			s.StudentID, s.FirstName, s.LastName, s.Email,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "eligible_student", students[i].StudentID)
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}

// GetByID returns a student by student number.
func (r *Repo) GetByID(ctx context.Context, studentID int) (*domain.EligibleStudent, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("eligible_students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("eligible_student: build get: %w", err)
	}

	var res row
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&res.StudentID, &res.FirstName, &res.LastName, &res.Email, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "eligible_student", studentID)
	}

	s := toDomain(res)
	return &s, nil
}

// Query returns a deferred listing of students matching f.
// Search matches the student number or, case-insensitively, the names and email.
func (r *Repo) Query(f domain.StudentFilter) paging.Query[domain.EligibleStudent] {
	stmt := postgres.Builder().Select(columns...).From("eligible_students")

	if search := strings.TrimSpace(f.Search); search != "" {
		like := postgres.ContainsPattern(search)
		stmt = stmt.Where(squirrel.Or{
			squirrel.Like{"CAST(student_id AS TEXT)": like},
			squirrel.ILike{"first_name": like},
			squirrel.ILike{"last_name": like},
			squirrel.ILike{"email": like},
		})
	}

	return postgres.NewSelectQuery(r.db, "eligible_student", stmt, orderBy(f.SortBy), toDomain)
}

// orderBy maps a listing sort key to ORDER BY terms. Unknown keys fall back
// to ascending student number.
func orderBy(sortBy string) []string {
	switch sortBy {
	case "IdDESC":
		return []string{"student_id DESC"}
	case "FirstName":
		return []string{"first_name ASC", "student_id ASC"}
	case "FirstNameDESC":
		return []string{"first_name DESC", "student_id ASC"}
	case "LastName":
		return []string{"last_name ASC", "student_id ASC"}
	case "LastNameDESC":
		return []string{"last_name DESC", "student_id ASC"}
	case "Email":
		return []string{"email ASC", "student_id ASC"}
	case "EmailDESC":
		return []string{"email DESC", "student_id ASC"}
	default:
		return []string{"student_id ASC"}
	}
}
