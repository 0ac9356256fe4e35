package recipes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the recipe endpoints.
//
// When mounted at /api/recipes:
//   - GET    /api/recipes                               - list (limit, sort, onlyApproved)
//   - GET    /api/recipes/filter                        - multi-dimension search
//   - GET    /api/recipes/user/{userId}                 - recipes owned by a user
//   - POST   /api/recipes                               - create (starts pending)
//   - GET    /api/recipes/{id}                          - get by id
//   - PUT    /api/recipes/{id}                          - partial update
//   - DELETE /api/recipes/{id}                          - delete
//   - PUT    /api/recipes/{id}/approve                  - approve (one-way)
//   - POST   /api/recipes/{id}/ratings                  - add a rating
//   - PUT    /api/recipes/{recipeId}/ratings/{ratingId} - update own rating
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/filter", h.Search)
	r.Get("/user/{userId}", h.ListByUser)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Put("/{id}/approve", h.Approve)
	r.Post("/{id}/ratings", h.AddRating)
	r.Put("/{recipeId}/ratings/{ratingId}", h.UpdateRating)

	return r
}
