// Package recipes provides the recipe API endpoints: listing with the
// approval-gate default, multi-dimension search, CRUD, the approve
// transition, and the embedded rating sub-resource.
package recipes

import (
	"net/http"
	"strconv"

	recipestore "recetario/internal/app/store/recipes"
	userstore "recetario/internal/app/store/users"
	"recetario/internal/app/system/jsonutil"
	"recetario/internal/app/system/normalize"
	"recetario/internal/app/system/sanitize"
	"recetario/internal/domain/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var validate = validator.New()

// Handler handles recipe requests. It needs the user store to resolve the
// rater's display name when a rating is added.
type Handler struct {
	recipes *recipestore.Store
	users   *userstore.Store
	logger  *zap.Logger
}

// NewHandler creates a new recipes handler.
func NewHandler(recipes *recipestore.Store, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{recipes: recipes, users: users, logger: logger}
}

// List handles GET /?limit=&sort=&onlyApproved=.
//
// sort is "asc" or "desc" (default desc) on creation time; limit caps the
// result after sorting. onlyApproved defaults to true: pending recipes stay
// out of listings unless the caller opts in with onlyApproved=false.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit int64
	if raw := normalize.QueryParam(q.Get("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			jsonutil.BadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	order := recipestore.SortDesc
	if q.Get("sort") == "asc" {
		order = recipestore.SortAsc
	}

	onlyApproved := q.Get("onlyApproved") != "false"

	out, err := h.recipes.List(r.Context(), limit, order, onlyApproved)
	if err != nil {
		h.logger.Error("listing recipes failed", zap.Error(err))
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, out)
}

// Search handles GET /filter with comma-separated multi-value parameters:
// include, exclude, name, userId, category, onlyApproved.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p := recipestore.FilterParams{
		Include:      normalize.CSVParam(q.Get("include")),
		Exclude:      normalize.CSVParam(q.Get("exclude")),
		Name:         normalize.QueryParam(q.Get("name")),
		UserIDs:      normalize.CSVParam(q.Get("userId")),
		Categories:   normalize.CSVParam(q.Get("category")),
		OnlyApproved: q.Get("onlyApproved") != "false",
	}

	out, err := h.recipes.Search(r.Context(), p)
	if err != nil {
		h.logger.Error("recipe search failed", zap.Error(err))
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, out)
}

// ListByUser handles GET /user/{userId}.
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	out, err := h.recipes.ListByUser(r.Context(), userID)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, out)
}

// GetByID handles GET /{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	rec, err := h.recipes.GetByID(r.Context(), id)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, rec)
}

// Create handles POST /. The created recipe always starts
// pending_to_approve no matter what the payload says.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createRecipeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid recipe: "+err.Error())
		return
	}

	rec, err := h.recipes.Create(r.Context(), in.toModel())
	if err != nil {
		h.logger.Error("creating recipe failed", zap.Error(err))
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("recipe created",
		zap.String("id", rec.ID.Hex()),
		zap.String("name", rec.Name),
		zap.String("user_id", rec.UserID),
	)
	jsonutil.Created(w, rec)
}

// Update handles PUT /{id} as a partial-field merge.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	var in updateRecipeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid recipe update: "+err.Error())
		return
	}

	rec, err := h.recipes.Update(r.Context(), id, toUpdateParams(in))
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.OK(w, rec)
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	if err := h.recipes.Delete(r.Context(), id); err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.Enveloped(w, http.StatusOK, "recipe deleted successfully", nil)
}

// Approve handles PUT /{id}/approve, the only status transition.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	rec, err := h.recipes.Approve(r.Context(), id)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("recipe approved", zap.String("id", rec.ID.Hex()))
	jsonutil.Enveloped(w, http.StatusOK, "recipe approved successfully", rec)
}

// AddRating handles POST /{id}/ratings. The rater must exist; their current
// username is denormalized into the rating.
func (h *Handler) AddRating(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	var in addRatingInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid rating: "+err.Error())
		return
	}

	raterID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		jsonutil.Fail(w, apperr.BadRequest("invalid userId %q", in.UserID))
		return
	}
	rater, err := h.users.GetByID(r.Context(), raterID)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}

	rec, err := h.recipes.AddRating(r.Context(), id, in.UserID, rater.Username, in.Score, sanitize.Text(in.Comment))
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	h.logger.Info("rating added",
		zap.String("recipe_id", rec.ID.Hex()),
		zap.String("user_id", in.UserID),
		zap.Int("score", in.Score),
	)
	jsonutil.Enveloped(w, http.StatusCreated, "rating added successfully", rec)
}

// UpdateRating handles PUT /{recipeId}/ratings/{ratingId}. The rating is
// addressed by (ratingId, userId): a user cannot update another user's
// rating even knowing its id.
func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	recipeID, err := parseID(r, "recipeId")
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	ratingID := chi.URLParam(r, "ratingId")

	var in updateRatingInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if err := validate.Struct(in); err != nil {
		jsonutil.BadRequest(w, "invalid rating update: "+err.Error())
		return
	}

	params := recipestore.UpdateRatingParams{Score: in.Score, Status: in.Status}
	if in.Comment != nil {
		clean := sanitize.Text(*in.Comment)
		params.Comment = &clean
	}

	rec, err := h.recipes.UpdateRating(r.Context(), recipeID, ratingID, in.UserID, params)
	if err != nil {
		jsonutil.Fail(w, err)
		return
	}
	jsonutil.Enveloped(w, http.StatusOK, "rating updated successfully", rec)
}

func toUpdateParams(in updateRecipeInput) recipestore.UpdateParams {
	p := recipestore.UpdateParams{
		Duration:   in.Duration,
		Difficulty: in.Difficulty,
		Servings:   in.Servings,
	}
	if in.Name != nil {
		clean := sanitize.Text(*in.Name)
		p.Name = &clean
	}
	if in.Description != nil {
		clean := sanitize.Text(*in.Description)
		p.Description = &clean
	}
	if in.Ingredients != nil {
		lines := toIngredientLines(*in.Ingredients)
		p.Ingredients = &lines
	}
	if in.Steps != nil {
		steps := toSteps(*in.Steps)
		p.Steps = &steps
	}
	if in.PrincipalPictures != nil {
		pics := toMediaResources(*in.PrincipalPictures)
		p.PrincipalPictures = &pics
	}
	if in.Category != nil {
		cats := sanitize.TextSlice(*in.Category)
		p.Category = &cats
	}
	return p
}

func parseID(r *http.Request, param string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, param)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid id %q", raw)
	}
	return id, nil
}
