package domain

// StudentFilter selects eligible students for a listing.
// SortBy is one of "", "IdDESC", "FirstName", "FirstNameDESC", "LastName",
// "LastNameDESC", "Email", "EmailDESC".
type StudentFilter struct {
	Search string
	SortBy string
}

// ProductFilter selects products for a listing.
// SortBy is one of "", "NameDESC", "TotalKey", "TotalKeyDESC", "AvailableKey",
// "AvailableKeyDESC", "UsedKey", "UsedKeyDESC".
type ProductFilter struct {
	Search string
	SortBy string
}

// AccountFilter selects accounts of a single role for a listing.
// SortBy is one of "", "IdDESC", "Email", "EmailDESC", "FirstName",
// "FirstNameDESC", "LastName", "LastNameDESC", "ActiveStatus", "ActiveStatusDESC".
type AccountFilter struct {
	Search string
	SortBy string
	Role   Role
}
