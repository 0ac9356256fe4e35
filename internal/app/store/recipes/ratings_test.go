package recipestore

import (
	"testing"

	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/testutil"
)

func TestStore_AddRating(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, testRecipe("Rated", "owner"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.AddRating(ctx, created.ID, "rater-1", "alice", 5, "delicious")
	if err != nil {
		t.Fatalf("AddRating() error = %v", err)
	}
	if len(got.Ratings) != 1 {
		t.Fatalf("AddRating() ratings = %d, want 1", len(got.Ratings))
	}

	r := got.Ratings[0]
	if r.ID == "" {
		t.Error("AddRating() did not assign a rating id")
	}
	if r.UserID != "rater-1" {
		t.Errorf("rating user_id = %q, want %q", r.UserID, "rater-1")
	}
	if r.Name != "alice" {
		t.Errorf("rating name = %q, want denormalized username", r.Name)
	}
	if r.Status != status.RatingPending {
		t.Errorf("rating status = %q, want %q", r.Status, status.RatingPending)
	}
	if r.CreatedAt.IsZero() {
		t.Error("rating created_at not set")
	}

	// Second rating appends, ids stay distinct
	got, err = store.AddRating(ctx, created.ID, "rater-2", "bob", 3, "")
	if err != nil {
		t.Fatalf("AddRating() second error = %v", err)
	}
	if len(got.Ratings) != 2 {
		t.Fatalf("second AddRating() ratings = %d, want 2", len(got.Ratings))
	}
	if got.Ratings[0].ID == got.Ratings[1].ID {
		t.Error("rating ids are not unique")
	}

	// Persisted, not just returned
	stored, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(stored.Ratings) != 2 {
		t.Errorf("stored ratings = %d, want 2", len(stored.Ratings))
	}
}

func TestStore_UpdateRating(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, testRecipe("Rated", "owner"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	withRating, err := store.AddRating(ctx, created.ID, "rater-1", "alice", 4, "good")
	if err != nil {
		t.Fatalf("AddRating() error = %v", err)
	}
	ratingID := withRating.Ratings[0].ID

	t.Run("owner updates score and comment", func(t *testing.T) {
		comment := "even better on day two"
		got, err := store.UpdateRating(ctx, created.ID, ratingID, "rater-1", UpdateRatingParams{
			Score:   5,
			Comment: &comment,
		})
		if err != nil {
			t.Fatalf("UpdateRating() error = %v", err)
		}
		r := got.Ratings[0]
		if r.Score != 5 {
			t.Errorf("score = %d, want 5", r.Score)
		}
		if r.Comment != comment {
			t.Errorf("comment = %q, want %q", r.Comment, comment)
		}
		if r.Status != status.RatingPending {
			t.Errorf("status = %q, want prior status preserved", r.Status)
		}
		if r.ID != ratingID || r.UserID != "rater-1" {
			t.Error("rating identity changed on update")
		}
	})

	t.Run("caller-supplied status wins", func(t *testing.T) {
		approved := status.RatingApproved
		got, err := store.UpdateRating(ctx, created.ID, ratingID, "rater-1", UpdateRatingParams{
			Score:  5,
			Status: &approved,
		})
		if err != nil {
			t.Fatalf("UpdateRating() error = %v", err)
		}
		if got.Ratings[0].Status != status.RatingApproved {
			t.Errorf("status = %q, want %q", got.Ratings[0].Status, status.RatingApproved)
		}
	})

	t.Run("another user cannot update the rating", func(t *testing.T) {
		_, err := store.UpdateRating(ctx, created.ID, ratingID, "rater-2", UpdateRatingParams{Score: 1})
		if !apperr.IsNotFound(err) {
			t.Errorf("UpdateRating(wrong user) error = %v, want NotFound", err)
		}
	})

	t.Run("unknown rating id fails NotFound", func(t *testing.T) {
		_, err := store.UpdateRating(ctx, created.ID, "no-such-rating", "rater-1", UpdateRatingParams{Score: 1})
		if !apperr.IsNotFound(err) {
			t.Errorf("UpdateRating(unknown id) error = %v, want NotFound", err)
		}
	})

	t.Run("invalid status fails BadRequest", func(t *testing.T) {
		bogus := "glowing"
		_, err := store.UpdateRating(ctx, created.ID, ratingID, "rater-1", UpdateRatingParams{
			Score:  5,
			Status: &bogus,
		})
		if !apperr.IsBadRequest(err) {
			t.Errorf("UpdateRating(invalid status) error = %v, want BadRequest", err)
		}
	})
}
