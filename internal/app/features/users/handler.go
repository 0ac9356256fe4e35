// Package users provides the user account API endpoints: registration,
// lookups, email/password authentication, password recovery, and the
// favorite-recipes list.
package users

import (
	"net/http"

	userstore "recetario/internal/app/store/users"
	"recetario/internal/app/system/jsonutil"
	"recetario/internal/app/system/mailer"
	"recetario/internal/domain/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var validate = validator.New()

// Handler handles user account requests. The mailer may be nil; recovery
// codes are then returned in the response only.
type Handler struct {
	store  *userstore.Store
	mail   *mailer.Mailer
	logger *zap.Logger
}

// NewHandler creates a new users handler.
func NewHandler(store *userstore.Store, mail *mailer.Mailer, logger *zap.Logger) *Handler {
	return &Handler{store: store, mail: mail, logger: logger}
}

// Create handles POST /. Username uniqueness is reported before email
// uniqueness when both collide.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createUserInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid user: "+err.Error())
		return
	}

	u, err := h.store.Create(r.Context(), userstore.CreateParams{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Status:   in.Status,
		Role:     in.Role,
	})
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("user created",
		zap.String("id", u.ID.Hex()),
		zap.String("username", u.Username),
	)
	jsonutil.Created(w, u)
}

// List handles GET /.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("listing users failed", zap.Error(err))
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, out)
}

// GetByID handles GET /{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	u, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, u)
}

// GetByEmail handles GET /email/{email}.
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, u)
}

// GetByUsername handles GET /username/{username}.
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, u)
}

// Auth handles POST /auth. A wrong email and a wrong password both come
// back as the same NotFound.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	var in authInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	u, err := h.store.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, u)
}

// RecoveryCode handles PUT /recovery-code: issues a fresh code, stores it
// on the account, and emails it best-effort.
func (h *Handler) RecoveryCode(w http.ResponseWriter, r *http.Request) {
	var in recoveryCodeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "a valid email is required")
		return
	}

	code, err := h.store.IssueRecoveryCode(r.Context(), in.Email)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}

	if h.mail != nil {
		if err := h.mail.SendRecoveryCode(in.Email, code); err != nil {
			h.logger.Warn("recovery code email failed", zap.String("email", in.Email), zap.Error(err))
		}
	}
	h.logger.Info("recovery code issued", zap.String("email", in.Email))
	jsonutil.Enveloped(w, http.StatusOK, "recovery code generated successfully", map[string]string{
		"recoveryCode": code,
	})
}

// ChangePassword handles PUT /change-password. The recovery code is
// single-use: a second attempt with the same code fails NotFound.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in changePasswordInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid change-password request: "+err.Error())
		return
	}

	if err := h.store.ChangePassword(r.Context(), in.Email, in.Password, in.RecoveryCode); err != nil {
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("password changed", zap.String("email", in.Email))
	jsonutil.Enveloped(w, http.StatusOK, "password updated successfully", nil)
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.Enveloped(w, http.StatusOK, "user deleted successfully", nil)
}

// AddFavorite handles POST /{id}/favorite-recipe.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	var in favoriteInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "recipeId is required")
		return
	}

	u, err := h.store.AddFavorite(r.Context(), id, in.RecipeID)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.Enveloped(w, http.StatusOK, "recipe added to favorites", u)
}

// RemoveFavorite handles DELETE /{id}/favorite-recipe/{recipeId}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	recipeID := chi.URLParam(r, "recipeId")

	u, err := h.store.RemoveFavorite(r.Context(), id, recipeID)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.Enveloped(w, http.StatusOK, "recipe removed from favorites", u)
}

func parseID(r *http.Request) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid id %q", raw)
	}
	return id, nil
}
