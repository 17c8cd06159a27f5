package rest

import (
	"net/http"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Upload  *UploadHandler
	List    *ListHandler
	Account *AccountHandler
}

// NewRouter mounts every route. Caller identity must already be in the
// request context (middleware.Auth); role checks happen here. uploadLimit
// may be nil.
func NewRouter(h Handlers, uploadLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middleware.RequireRole(domain.RoleAdmin)
	student := middleware.RequireRole(domain.RoleStudent)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /admin/uploads/{kind}", middleware.Chain(admin, uploadLimit)(http.HandlerFunc(h.Upload.Upload)))
	mux.Handle("GET /admin/uploads", admin(http.HandlerFunc(h.List.Uploads)))

	mux.Handle("GET /admin/students", admin(http.HandlerFunc(h.List.Students)))
	mux.Handle("GET /admin/products", admin(http.HandlerFunc(h.List.Products)))
	mux.Handle("GET /admin/accounts", admin(http.HandlerFunc(h.List.Accounts)))
	mux.Handle("POST /admin/accounts/{id}/ban", admin(http.HandlerFunc(h.Account.ToggleBan)))
	mux.Handle("DELETE /admin/accounts/{id}", admin(http.HandlerFunc(h.Account.Delete)))

	mux.Handle("GET /me/keys", student(http.HandlerFunc(h.List.MyKeys)))

	return mux
}
