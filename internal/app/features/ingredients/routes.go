package ingredients

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the ingredient catalog endpoints.
//
// When mounted at /api/ingredients:
//   - GET    /api/ingredients             - list the catalog
//   - GET    /api/ingredients/name/{name} - look up by name
//   - GET    /api/ingredients/{id}        - look up by id
//   - POST   /api/ingredients             - create
//   - PUT    /api/ingredients/{id}        - rename
//   - DELETE /api/ingredients/{id}        - delete
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/name/{name}", h.GetByName)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
