package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied to products registered through a catalog upload.
const (
	DefaultQuantityLimit = 1
	StatusActive         = "Active"
	StatusInactive       = "Inactive"
)

// Product is a licensed software title that keys are issued for.
type Product struct {
	ID            uuid.UUID
	Name          string
	QuantityLimit int
	ActiveStatus  string
	DownloadLink  *string
	CreatedAt     time.Time
}

// NewProduct returns a product with the catalog upload defaults.
func NewProduct(name string) Product {
	return Product{
		Name:          name,
		QuantityLimit: DefaultQuantityLimit,
		ActiveStatus:  StatusActive,
	}
}

// ProductSummary is a product together with its key inventory counters.
type ProductSummary struct {
	Product
	KeyCount          int
	RemainingKeyCount int
	UsedKeyCount      int
}

// KeyPair is one license key line: the product it belongs to and the key itself.
type KeyPair struct {
	Product string
	Key     string
}

// StudentKey is a key assigned to a student, as shown on the student page.
type StudentKey struct {
	Product      string
	Key          string
	DownloadLink *string
}

// KeyInsertResult reports how a batch of key lines was stored.
// UnknownProduct holds the indexes of pairs naming a product that is not in
// the catalog; those keys are not stored.
type KeyInsertResult struct {
	Inserted       int
	Duplicates     int
	UnknownProduct []int
}
