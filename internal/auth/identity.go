package auth

import "github.com/google/uuid"

// Identity is the caller carried by a verified access token.
type Identity struct {
	UserID    uuid.UUID
	Role      string
	StudentID int
}
