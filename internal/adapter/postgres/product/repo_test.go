package product_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/adapter/postgres/product"
	"github.com/aidenliw/msl-mohawk/internal/adapter/postgres/testhelper"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/paging"
)

func TestRepo_UpsertBatch_SkipsExistingNames(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	existing := testhelper.SeedProduct(t, pool)
	name := "Visual Studio " + uuid.New().String()[:8]

	n, err := repo.UpsertBatch(ctx, []domain.Product{
		domain.NewProduct(name),
		domain.NewProduct(existing.Name),
		domain.NewProduct(name), // duplicate within the same file
	})
	if err != nil {
		t.Fatalf("UpsertBatch: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("UpsertBatch inserted = %d, want 1", n)
	}

	page, err := paging.Materialize(ctx, repo.Query(domain.ProductFilter{Search: name}), nil, 10)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", page.TotalCount)
	}
	got := page.Items[0]
	if got.QuantityLimit != 1 || got.ActiveStatus != domain.StatusActive {
		t.Errorf("defaults not stored: %+v", got.Product)
	}
}

func TestRepo_Query_KeyCounters(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)
	ctx := context.Background()

	p := testhelper.SeedProduct(t, pool)
	s := testhelper.SeedStudent(t, pool)
	testhelper.SeedKey(t, pool, p.ID, 0)
	testhelper.SeedKey(t, pool, p.ID, 0)
	testhelper.SeedKey(t, pool, p.ID, s.StudentID)

	page, err := paging.Materialize(ctx, repo.Query(domain.ProductFilter{Search: p.Name}), nil, 10)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(page.Items))
	}
	got := page.Items[0]
	if got.KeyCount != 3 || got.RemainingKeyCount != 2 || got.UsedKeyCount != 1 {
		t.Errorf("counters = %d/%d/%d, want 3/2/1", got.KeyCount, got.RemainingKeyCount, got.UsedKeyCount)
	}
}

func TestRepo_Query_ProductWithoutKeys(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := product.New(pool)

	p := testhelper.SeedProduct(t, pool)

	page, err := paging.Materialize(context.Background(), repo.Query(domain.ProductFilter{Search: p.Name}), nil, 10)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].KeyCount != 0 {
		t.Fatalf("expected one product with zero keys, got %+v", page.Items)
	}
}
