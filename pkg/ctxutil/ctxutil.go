package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userRoleKey  ctxKey = "user_role"
	studentIDKey ctxKey = "student_id"
	requestIDKey ctxKey = "request_id"
)

// adminRole matches domain.RoleAdmin; ctxutil does not import internal packages.
const adminRole = "Admin"

// WithUserID stores the account ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the account ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the caller's role in the context.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx returns the caller's role, or "" when anonymous.
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// IsAdminCtx reports whether the caller carries the Admin role.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == adminRole
}

// WithStudentID stores the caller's student number in the context.
func WithStudentID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, studentIDKey, id)
}

// StudentIDFromCtx extracts the caller's student number.
// Returns 0 and false when it is missing or not positive.
func StudentIDFromCtx(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(studentIDKey).(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
