package domain

import "github.com/google/uuid"

// Role is the membership role of an account.
type Role string

const (
	RoleStudent Role = "Student"
	RoleAdmin   Role = "Admin"
)

// Account statuses. A disabled account keeps its keys but cannot sign in.
const (
	AccountActive   = "Active"
	AccountDisabled = "Disabled"
)

// ParseRole maps a request value to a Role. Anything other than "Admin"
// is treated as the student role.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleStudent
}

// Account is a registered portal user. Accounts are owned by the identity
// store; this service only lists them.
type Account struct {
	ID           uuid.UUID
	Email        string
	StudentID    int
	FirstName    string
	LastName     string
	ActiveStatus string
	Role         Role
}

// Toggled returns the status a ban toggle moves the account to.
func (a Account) Toggled() string {
	if a.ActiveStatus == AccountDisabled {
		return AccountActive
	}
	return AccountDisabled
}
