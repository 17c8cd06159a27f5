package domain

import (
	"fmt"
	"time"
)

// StudentIDLimit is the exclusive upper bound for a student number (nine digits).
const StudentIDLimit = 1_000_000_000

// InstitutionDomain is the mail domain every eligible student address belongs to.
const InstitutionDomain = "mohawkcollege.ca"

// EligibleStudent is a student pre-authorized by an uploaded roster to
// self-register an account.
type EligibleStudent struct {
	StudentID int
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormatStudentID renders a student number zero-padded to nine digits.
func FormatStudentID(id int) string {
	return fmt.Sprintf("%09d", id)
}
