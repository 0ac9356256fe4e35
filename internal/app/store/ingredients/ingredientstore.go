// internal/app/store/ingredients/ingredientstore.go
package ingredientstore

import (
	"context"

	"recetario/internal/app/system/normalize"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists the ingredient catalog: a flat registry of unique names.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ingredients")}
}

// List returns the whole catalog sorted by name.
func (s *Store) List(ctx context.Context) ([]models.Ingredient, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Internal(err, "listing ingredients")
	}
	defer cur.Close(ctx)

	var out []models.Ingredient
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Internal(err, "decoding ingredients")
	}
	if out == nil {
		out = []models.Ingredient{}
	}
	return out, nil
}

// GetByID loads an ingredient by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("ingredient with id %s not found", id.Hex())
		}
		return nil, apperr.Internal(err, "loading ingredient %s", id.Hex())
	}
	return &ing, nil
}

// GetByName loads an ingredient by its exact trimmed name.
func (s *Store) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	name = normalize.IngredientName(name)
	var ing models.Ingredient
	if err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&ing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("ingredient %q not found", name)
		}
		return nil, apperr.Internal(err, "loading ingredient %q", name)
	}
	return &ing, nil
}

// Create inserts a new catalog entry. The trimmed name must be unique; a
// duplicate is rejected with Conflict. The unique index backs up the
// pre-check for concurrent creates.
func (s *Store) Create(ctx context.Context, name string) (models.Ingredient, error) {
	name = normalize.IngredientName(name)
	if name == "" {
		return models.Ingredient{}, apperr.BadRequest("ingredient name is required")
	}

	if err := s.c.FindOne(ctx, bson.M{"name": name}).Err(); err == nil {
		return models.Ingredient{}, apperr.Conflict("ingredient %q already exists", name)
	} else if err != mongo.ErrNoDocuments {
		return models.Ingredient{}, apperr.Internal(err, "checking ingredient %q", name)
	}

	ing := models.Ingredient{ID: primitive.NewObjectID(), Name: name}
	if _, err := s.c.InsertOne(ctx, ing); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Ingredient{}, apperr.Conflict("ingredient %q already exists", name)
		}
		return models.Ingredient{}, apperr.Internal(err, "inserting ingredient %q", name)
	}
	return ing, nil
}

// Update renames an ingredient. The new trimmed name must stay unique.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name string) (*models.Ingredient, error) {
	name = normalize.IngredientName(name)
	if name == "" {
		return nil, apperr.BadRequest("ingredient name is required")
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var ing models.Ingredient
	if err := res.Decode(&ing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("ingredient with id %s not found", id.Hex())
		}
		if wafflemongo.IsDup(err) {
			return nil, apperr.Conflict("ingredient %q already exists", name)
		}
		return nil, apperr.Internal(err, "updating ingredient %s", id.Hex())
	}
	return &ing, nil
}

// Delete removes an ingredient by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Internal(err, "deleting ingredient %s", id.Hex())
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("ingredient with id %s not found", id.Hex())
	}
	return nil
}
