// internal/app/store/recipes/recipestore.go
package recipestore

import (
	"context"
	"time"

	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists recipes and their embedded ratings.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("recipes")}
}

// SortOrder selects the created_at ordering for listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// List returns recipes sorted by creation time. limit <= 0 means no cap.
// When onlyApproved is true, pending recipes are filtered out; this is the
// visibility gate of the approval workflow.
func (s *Store) List(ctx context.Context, limit int64, order SortOrder, onlyApproved bool) ([]models.Recipe, error) {
	filter := bson.M{}
	if onlyApproved {
		filter["status"] = status.RecipeApproved
	}

	sortVal := -1
	if order == SortAsc {
		sortVal = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: sortVal}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return s.find(ctx, filter, opts)
}

// Search runs the multi-dimension filter built by BuildFilter.
func (s *Store) Search(ctx context.Context, p FilterParams) ([]models.Recipe, error) {
	return s.find(ctx, BuildFilter(p))
}

// ListByUser returns all recipes owned by the given user id, regardless of
// approval status.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

// GetByID loads a recipe by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var rec models.Recipe
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("recipe with id %s not found", id.Hex())
		}
		return nil, apperr.Internal(err, "loading recipe %s", id.Hex())
	}
	return &rec, nil
}

// Create inserts a recipe. Whatever status the caller supplied is discarded:
// every new recipe starts pending_to_approve.
func (s *Store) Create(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	rec.ID = primitive.NewObjectID()
	rec.Status = status.RecipePending
	rec.Ratings = nil
	rec.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return models.Recipe{}, apperr.Internal(err, "inserting recipe %q", rec.Name)
	}
	return rec, nil
}

// UpdateParams holds the optional fields for a partial recipe update.
// All fields are pointers - nil means "leave this field unchanged".
// ID, owner, status, ratings, and creation time are immutable here;
// status moves only through Approve and ratings through the rating calls.
type UpdateParams struct {
	Name              *string
	Description       *string
	Ingredients       *[]models.IngredientLine
	Steps             *[]models.Step
	PrincipalPictures *[]models.MediaResource
	Category          *[]string
	Duration          *int
	Difficulty        *string
	Servings          *int
}

// Update applies a partial-field merge and returns the updated recipe.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p UpdateParams) (*models.Recipe, error) {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Ingredients != nil {
		set["ingredients"] = *p.Ingredients
	}
	if p.Steps != nil {
		set["steps"] = *p.Steps
	}
	if p.PrincipalPictures != nil {
		set["principal_pictures"] = *p.PrincipalPictures
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Duration != nil {
		set["duration"] = *p.Duration
	}
	if p.Difficulty != nil {
		set["difficulty"] = *p.Difficulty
	}
	if p.Servings != nil {
		set["servings"] = *p.Servings
	}

	if len(set) == 0 {
		// Nothing to change; still report NotFound for a missing id.
		return s.GetByID(ctx, id)
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var rec models.Recipe
	if err := res.Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("recipe with id %s not found", id.Hex())
		}
		return nil, apperr.Internal(err, "updating recipe %s", id.Hex())
	}
	return &rec, nil
}

// Delete removes a recipe by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Internal(err, "deleting recipe %s", id.Hex())
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("recipe with id %s not found", id.Hex())
	}
	return nil
}

// Approve transitions a recipe to approved. The transition is one-way and
// idempotent: approving an approved recipe leaves it approved.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status.RecipeApproved}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var rec models.Recipe
	if err := res.Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("recipe with id %s not found", id.Hex())
		}
		return nil, apperr.Internal(err, "approving recipe %s", id.Hex())
	}
	return &rec, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Recipe, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperr.Internal(err, "querying recipes")
	}
	defer cur.Close(ctx)

	var out []models.Recipe
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Internal(err, "decoding recipes")
	}
	if out == nil {
		out = []models.Recipe{}
	}
	return out, nil
}
