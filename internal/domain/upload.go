package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadKind identifies what an uploaded file registers.
type UploadKind string

const (
	UploadStudents UploadKind = "students"
	UploadProducts UploadKind = "products"
	UploadKeys     UploadKind = "keys"
)

// ParseUploadKind validates a kind received from a route or a CLI argument.
func ParseUploadKind(s string) (UploadKind, error) {
	switch k := UploadKind(s); k {
	case UploadStudents, UploadProducts, UploadKeys:
		return k, nil
	default:
		return "", NewValidationError("kind", fmt.Sprintf("unknown upload kind %q", s))
	}
}

// Upload is the audit record of one processed file.
type Upload struct {
	ID        uuid.UUID
	Kind      UploadKind
	FileName  string
	Accepted  int
	Persisted int
	Rejected  int
	CreatedAt time.Time
}
