package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueStudentID returns a random nine-digit student number.
func uniqueStudentID() int {
	return 100_000_000 + rand.IntN(899_999_999)
}

// SeedStudent inserts an eligible student with a random student number.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) domain.EligibleStudent {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.EligibleStudent{
		StudentID: uniqueStudentID(),
		FirstName: "First" + suffix,
		LastName:  "Last" + suffix,
		Email:     "student." + suffix + "@mohawkcollege.ca",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO eligible_students (student_id, first_name, last_name, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.StudentID, s.FirstName, s.LastName, s.Email, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStudent: %v", err)
	}

	return s
}

// SeedProduct inserts an active product with a unique name.
func SeedProduct(t *testing.T, pool *pgxpool.Pool) domain.Product {
	t.Helper()

	p := domain.NewProduct("Product " + uniqueSuffix())
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, name, quantity_limit, active_status, download_link, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.QuantityLimit, p.ActiveStatus, p.DownloadLink, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedKey inserts a key for productID. A non-zero ownerStudentID assigns it.
func SeedKey(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID, ownerStudentID int) string {
	t.Helper()

	key := "KEY-" + uniqueSuffix()
	var owner *int
	if ownerStudentID > 0 {
		owner = &ownerStudentID
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO product_keys (id, product_id, key_value, owner_student_id, assigned_at)
		 VALUES ($1, $2, $3, $4, CASE WHEN $4::int IS NULL THEN NULL ELSE now() END)`,
		uuid.New(), productID, key, owner,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedKey: %v", err)
	}

	return key
}

// SeedAccount inserts an account with the given role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Account{
		ID:           uuid.New(),
		Email:        "account." + suffix + "@mohawkcollege.ca",
		StudentID:    uniqueStudentID(),
		FirstName:    "First" + suffix,
		LastName:     "Last" + suffix,
		ActiveStatus: domain.AccountActive,
		Role:         role,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, student_id, first_name, last_name, active_status, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Email, a.StudentID, a.FirstName, a.LastName, a.ActiveStatus, string(a.Role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return a
}
