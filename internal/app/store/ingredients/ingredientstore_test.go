package ingredientstore

import (
	"testing"

	"recetario/internal/domain/apperr"
	"recetario/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	ing, err := store.Create(ctx, "  Flour  ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if ing.Name != "Flour" {
		t.Errorf("Create() name = %q, want trimmed %q", ing.Name, "Flour")
	}
	if ing.ID.IsZero() {
		t.Error("Create() returned zero ObjectID")
	}

	t.Run("duplicate name fails Conflict", func(t *testing.T) {
		_, err := store.Create(ctx, "Flour")
		if !apperr.IsConflict(err) {
			t.Errorf("Create(duplicate) error = %v, want Conflict", err)
		}
	})

	t.Run("blank name fails BadRequest", func(t *testing.T) {
		_, err := store.Create(ctx, "   ")
		if !apperr.IsBadRequest(err) {
			t.Errorf("Create(blank) error = %v, want BadRequest", err)
		}
	})
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	empty, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("List(empty catalog) = %v, want empty non-nil slice", empty)
	}

	for _, name := range []string{"Sugar", "Flour", "Milk"} {
		if _, err := store.Create(ctx, name); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List() = %d ingredients, want 3", len(got))
	}
	if got[0].Name != "Flour" || got[1].Name != "Milk" || got[2].Name != "Sugar" {
		t.Errorf("List() order = [%s %s %s], want sorted by name", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestStore_GetByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, "Butter")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByName(ctx, " Butter ")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByName() id = %s, want %s", got.ID.Hex(), created.ID.Hex())
	}

	if _, err := store.GetByName(ctx, "Margarine"); !apperr.IsNotFound(err) {
		t.Errorf("GetByName(missing) error = %v, want NotFound", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, "Egs")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Update(ctx, created.ID, "Eggs")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Name != "Eggs" {
		t.Errorf("Update() name = %q, want %q", got.Name, "Eggs")
	}

	if _, err := store.Update(ctx, primitive.NewObjectID(), "Salt"); !apperr.IsNotFound(err) {
		t.Errorf("Update(missing) error = %v, want NotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := New(db)

	created, err := store.Create(ctx, "Salt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("GetByID(deleted) error = %v, want NotFound", err)
	}
	if err := store.Delete(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("Delete(twice) error = %v, want NotFound", err)
	}
}
