package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

func newTestRouter() http.Handler {
	list := &listServiceStub{}
	return NewRouter(Handlers{
		Health:  NewHealthHandler(&dbPingerMock{}, "test"),
		Upload:  NewUploadHandler(&ingestServiceStub{}, 1<<20, slog.Default()),
		List:    NewListHandler(list, slog.Default()),
		Account: NewAccountHandler(&accountServiceStub{}, slog.Default()),
	}, nil)
}

func asRole(req *http.Request, role domain.Role) *http.Request {
	ctx := ctxutil.WithUserID(req.Context(), uuid.New())
	ctx = ctxutil.WithUserRole(ctx, string(role))
	if role == domain.RoleStudent {
		ctx = ctxutil.WithStudentID(ctx, 123456789)
	}
	return req.WithContext(ctx)
}

func TestRouter_RoleGates(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		role       domain.Role
		wantStatus int
	}{
		{name: "live is public", method: http.MethodGet, path: "/live", wantStatus: http.StatusOK},
		{name: "ready is public", method: http.MethodGet, path: "/ready", wantStatus: http.StatusOK},
		{name: "anonymous admin listing", method: http.MethodGet, path: "/admin/students", wantStatus: http.StatusUnauthorized},
		{name: "student admin listing", method: http.MethodGet, path: "/admin/students", role: domain.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "admin listing", method: http.MethodGet, path: "/admin/products", role: domain.RoleAdmin, wantStatus: http.StatusOK},
		{name: "admin upload history", method: http.MethodGet, path: "/admin/uploads", role: domain.RoleAdmin, wantStatus: http.StatusOK},
		{name: "student upload", method: http.MethodPost, path: "/admin/uploads/keys", role: domain.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "student ban", method: http.MethodPost, path: "/admin/accounts/" + uuid.NewString() + "/ban", role: domain.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "student keys", method: http.MethodGet, path: "/me/keys", role: domain.RoleStudent, wantStatus: http.StatusOK},
		{name: "admin keys", method: http.MethodGet, path: "/me/keys", role: domain.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "wrong method", method: http.MethodPut, path: "/admin/students", role: domain.RoleAdmin, wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.role != "" {
				req = asRole(req, tt.role)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRouter_PathValues(t *testing.T) {
	t.Parallel()

	var gotID uuid.UUID
	router := NewRouter(Handlers{
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
		Upload: NewUploadHandler(&ingestServiceStub{}, 1<<20, slog.Default()),
		List:   NewListHandler(&listServiceStub{}, slog.Default()),
		Account: NewAccountHandler(&accountServiceStub{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				gotID = id
				return nil
			},
		}, slog.Default()),
	}, nil)

	target := uuid.New()
	req := asRole(httptest.NewRequest(http.MethodDelete, "/admin/accounts/"+target.String(), nil), domain.RoleAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if gotID != target {
		t.Errorf("id = %s, want %s", gotID, target)
	}
}
