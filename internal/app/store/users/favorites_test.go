package userstore

import (
	"testing"

	"recetario/internal/domain/apperr"
	"recetario/internal/testutil"
)

func TestStore_Favorites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateParams{
		Username: "hana",
		Password: "secret1",
		Email:    "hana@example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	u, err := store.AddFavorite(ctx, created.ID, "recipe-1")
	if err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if len(u.FavoriteRecipeIDs) != 1 || u.FavoriteRecipeIDs[0] != "recipe-1" {
		t.Errorf("favorites = %v, want [recipe-1]", u.FavoriteRecipeIDs)
	}

	t.Run("duplicate add fails BadRequest", func(t *testing.T) {
		_, err := store.AddFavorite(ctx, created.ID, "recipe-1")
		if !apperr.IsBadRequest(err) {
			t.Errorf("AddFavorite(duplicate) error = %v, want BadRequest", err)
		}
	})

	t.Run("second favorite appends", func(t *testing.T) {
		u, err := store.AddFavorite(ctx, created.ID, "recipe-2")
		if err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}
		if len(u.FavoriteRecipeIDs) != 2 {
			t.Errorf("favorites = %v, want two entries", u.FavoriteRecipeIDs)
		}
	})

	t.Run("favorites persist", func(t *testing.T) {
		got, err := store.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if len(got.FavoriteRecipeIDs) != 2 {
			t.Errorf("stored favorites = %v, want two entries", got.FavoriteRecipeIDs)
		}
	})

	t.Run("remove", func(t *testing.T) {
		u, err := store.RemoveFavorite(ctx, created.ID, "recipe-1")
		if err != nil {
			t.Fatalf("RemoveFavorite() error = %v", err)
		}
		if len(u.FavoriteRecipeIDs) != 1 || u.FavoriteRecipeIDs[0] != "recipe-2" {
			t.Errorf("favorites after remove = %v, want [recipe-2]", u.FavoriteRecipeIDs)
		}
	})

	t.Run("removing a missing favorite fails NotFound", func(t *testing.T) {
		_, err := store.RemoveFavorite(ctx, created.ID, "recipe-1")
		if !apperr.IsNotFound(err) {
			t.Errorf("RemoveFavorite(missing) error = %v, want NotFound", err)
		}
	})
}
