package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the user account endpoints.
//
// When mounted at /api/users:
//   - POST   /api/users                                  - register
//   - GET    /api/users                                  - list
//   - POST   /api/users/auth                             - authenticate
//   - PUT    /api/users/recovery-code                    - issue recovery code
//   - PUT    /api/users/change-password                  - recover password
//   - GET    /api/users/email/{email}                    - look up by email
//   - GET    /api/users/username/{username}              - look up by username
//   - GET    /api/users/{id}                             - get by id
//   - DELETE /api/users/{id}                             - delete
//   - POST   /api/users/{id}/favorite-recipe             - add favorite
//   - DELETE /api/users/{id}/favorite-recipe/{recipeId}  - remove favorite
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Post("/auth", h.Auth)
	r.Put("/recovery-code", h.RecoveryCode)
	r.Put("/change-password", h.ChangePassword)
	r.Get("/email/{email}", h.GetByEmail)
	r.Get("/username/{username}", h.GetByUsername)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/favorite-recipe", h.AddFavorite)
	r.Delete("/{id}/favorite-recipe/{recipeId}", h.RemoveFavorite)

	return r
}
