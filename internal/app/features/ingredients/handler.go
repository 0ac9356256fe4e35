// Package ingredients provides the ingredient catalog API endpoints.
//
// The catalog is a flat registry of unique names that recipes reference by
// free-form ingredient lines; it backs autocomplete and the search filters.
package ingredients

import (
	"net/http"

	ingredientstore "recetario/internal/app/store/ingredients"
	"recetario/internal/app/system/jsonutil"
	"recetario/internal/domain/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var validate = validator.New()

// Handler handles ingredient catalog requests.
type Handler struct {
	store  *ingredientstore.Store
	logger *zap.Logger
}

// NewHandler creates a new ingredients handler.
func NewHandler(store *ingredientstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

type ingredientInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// List handles GET / and returns the whole catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("listing ingredients failed", zap.Error(err))
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, out)
}

// GetByName handles GET /name/{name}.
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ing, err := h.store.GetByName(r.Context(), name)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, ing)
}

// GetByID handles GET /{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	ing, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, ing)
}

// Create handles POST /.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in ingredientInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "name is required")
		return
	}

	ing, err := h.store.Create(r.Context(), in.Name)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("ingredient created", zap.String("id", ing.ID.Hex()), zap.String("name", ing.Name))
	jsonutil.Created(w, ing)
}

// Update handles PUT /{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	var in ingredientInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "name is required")
		return
	}

	ing, err := h.store.Update(r.Context(), id, in.Name)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, ing)
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
	jsonutil.Enveloped(w, http.StatusOK, "ingredient deleted successfully", nil)
}

func parseID(r *http.Request) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid id %q", raw)
	}
	return id, nil
}
