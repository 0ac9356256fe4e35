// internal/app/store/recipes/ratings.go
package recipestore

import (
	"context"
	"time"

	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ratings are embedded sub-documents, maintained with a read-modify-write on
// the whole recipe document. Two concurrent writers race on the read snapshot
// and the last writer wins.

// AddRating appends a new rating to a recipe. The rater's display name is
// denormalized at write time and never refreshed. New ratings start pending.
func (s *Store) AddRating(ctx context.Context, recipeID primitive.ObjectID, userID, name string, score int, comment string) (*models.Recipe, error) {
	rec, err := s.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	rating := models.Rating{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Score:     score,
		Comment:   comment,
		Status:    status.RatingPending,
		CreatedAt: time.Now().UTC(),
	}
	rec.Ratings = append(rec.Ratings, rating)

	if err := s.saveRatings(ctx, recipeID, rec.Ratings); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRatingParams carries the mutable rating fields. Comment and Status
// are pointers: nil leaves the stored value as is. A rating's id, user id,
// and creation time are immutable.
type UpdateRatingParams struct {
	Score   int
	Comment *string
	Status  *string
}

// UpdateRating replaces score/comment of an existing rating.
//
// The rating is located by the (ratingID, userID) composite key. A miss on
// either half fails with the same NotFound: knowing a rating id is not
// enough to touch another user's rating.
//
// Status handling: a caller-supplied status wins; otherwise the prior status
// is preserved (falling back to pending for legacy ratings without one).
func (s *Store) UpdateRating(ctx context.Context, recipeID primitive.ObjectID, ratingID, userID string, p UpdateRatingParams) (*models.Recipe, error) {
	if p.Status != nil && !status.IsValidRating(*p.Status) {
		return nil, apperr.BadRequest("invalid rating status %q", *p.Status)
	}

	rec, err := s.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	idx, ok := FindRating(rec.Ratings, ratingID, userID)
	if !ok {
		return nil, apperr.NotFound("rating with id %s not found for this user", ratingID)
	}

	r := &rec.Ratings[idx]
	r.Score = p.Score
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	switch {
	case p.Status != nil:
		r.Status = *p.Status
	case r.Status == "":
		r.Status = status.RatingPending
	}

	if err := s.saveRatings(ctx, recipeID, rec.Ratings); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRating locates a rating by its (id, userID) composite key and returns
// its index. Both halves must match; this is the authorization gate for
// rating updates, kept as a plain function so it is testable on its own.
func FindRating(ratings []models.Rating, ratingID, userID string) (int, bool) {
	for i, r := range ratings {
		if r.ID == ratingID && r.UserID == userID {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) saveRatings(ctx context.Context, recipeID primitive.ObjectID, ratings []models.Rating) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": recipeID},
		bson.M{"$set": bson.M{"ratings": ratings}},
	)
	if err != nil {
		return apperr.Internal(err, "saving ratings for recipe %s", recipeID.Hex())
	}
	return nil
}
