// internal/app/store/users/favorites.go
package userstore

import (
	"context"
	"time"

	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites are a deduplicated list of recipe ids on the user document,
// maintained read-modify-write like recipe ratings: concurrent updates to
// the same user are last writer wins.

// AddFavorite appends a recipe id to the user's favorites. Adding an id
// that is already present is rejected with BadRequest.
func (s *Store) AddFavorite(ctx context.Context, userID primitive.ObjectID, recipeID string) (*models.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasFavorite(recipeID) {
		return nil, apperr.BadRequest("recipe is already in favorites")
	}

	u.FavoriteRecipeIDs = append(u.FavoriteRecipeIDs, recipeID)
	if err := s.saveFavorites(ctx, userID, u.FavoriteRecipeIDs); err != nil {
		return nil, err
	}
	return u, nil
}

// RemoveFavorite drops a recipe id from the user's favorites. Removing an
// id that is not present fails NotFound.
func (s *Store) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, recipeID string) (*models.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.HasFavorite(recipeID) {
		return nil, apperr.NotFound("recipe %s is not in favorites", recipeID)
	}

	kept := u.FavoriteRecipeIDs[:0]
	for _, id := range u.FavoriteRecipeIDs {
		if id != recipeID {
			kept = append(kept, id)
		}
	}
	u.FavoriteRecipeIDs = kept

	if err := s.saveFavorites(ctx, userID, u.FavoriteRecipeIDs); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) saveFavorites(ctx context.Context, userID primitive.ObjectID, ids []string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"favorite_recipe_ids": ids,
			"updated_at":          time.Now().UTC(),
		}},
	)
	if err != nil {
		return apperr.Internal(err, "saving favorites for user %s", userID.Hex())
	}
	return nil
}
