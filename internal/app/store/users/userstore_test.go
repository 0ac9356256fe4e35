package userstore

import (
	"testing"

	"recetario/internal/app/system/authutil"
	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"
	"recetario/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestStore(t *testing.T) (*Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return New(db, authutil.Plain{}), db
}

func TestStore_Create(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, CreateParams{
		Username: "alice",
		Password: "secret1",
		Email:    "Alice@Example.COM",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("Create() email = %q, want normalized lowercase", u.Email)
	}
	if u.Status != status.UserActive {
		t.Errorf("Create() status = %q, want default %q", u.Status, status.UserActive)
	}
	if u.Role != models.RoleUser {
		t.Errorf("Create() role = %q, want default %q", u.Role, models.RoleUser)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	t.Run("duplicate username fails Conflict", func(t *testing.T) {
		_, err := store.Create(ctx, CreateParams{
			Username: "alice",
			Password: "secret1",
			Email:    "other@example.com",
		})
		if !apperr.IsConflict(err) {
			t.Errorf("Create(dup username) error = %v, want Conflict", err)
		}
	})

	t.Run("duplicate email fails Conflict", func(t *testing.T) {
		_, err := store.Create(ctx, CreateParams{
			Username: "alice2",
			Password: "secret1",
			Email:    "alice@example.com",
		})
		if !apperr.IsConflict(err) {
			t.Errorf("Create(dup email) error = %v, want Conflict", err)
		}
	})

	t.Run("username conflict reported before email conflict", func(t *testing.T) {
		_, err := store.Create(ctx, CreateParams{
			Username: "alice",
			Password: "secret1",
			Email:    "alice@example.com",
		})
		if !apperr.IsConflict(err) {
			t.Fatalf("Create(dup both) error = %v, want Conflict", err)
		}
		if got := err.Error(); got != `username "alice" already exists` {
			t.Errorf("Create(dup both) message = %q, want the username conflict", got)
		}
	})

	t.Run("invalid role fails BadRequest", func(t *testing.T) {
		_, err := store.Create(ctx, CreateParams{
			Username: "bob",
			Password: "secret1",
			Email:    "bob@example.com",
			Role:     "superuser",
		})
		if !apperr.IsBadRequest(err) {
			t.Errorf("Create(bad role) error = %v, want BadRequest", err)
		}
	})
}

func TestStore_Authenticate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, CreateParams{
		Username: "carol",
		Password: "correct-horse",
		Email:    "carol@example.com",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		u, err := store.Authenticate(ctx, "carol@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if u.Username != "carol" {
			t.Errorf("Authenticate() username = %q, want %q", u.Username, "carol")
		}
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		_, errPass := store.Authenticate(ctx, "carol@example.com", "wrong")
		_, errMail := store.Authenticate(ctx, "nobody@example.com", "correct-horse")

		if !apperr.IsNotFound(errPass) {
			t.Errorf("Authenticate(wrong password) error = %v, want NotFound", errPass)
		}
		if !apperr.IsNotFound(errMail) {
			t.Errorf("Authenticate(unknown email) error = %v, want NotFound", errMail)
		}
		if errPass.Error() != errMail.Error() {
			t.Errorf("messages differ: %q vs %q, want identical so emails cannot be probed",
				errPass.Error(), errMail.Error())
		}
	})

	t.Run("unfinished registration fails BadRequest", func(t *testing.T) {
		if _, err := store.Create(ctx, CreateParams{
			Username: "dave",
			Password: "secret1",
			Email:    "dave@example.com",
			Status:   status.UserRegisterNotFinished,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		_, err := store.Authenticate(ctx, "dave@example.com", "secret1")
		if !apperr.IsBadRequest(err) {
			t.Errorf("Authenticate(unfinished) error = %v, want BadRequest", err)
		}
	})
}

func TestStore_Lookups(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateParams{
		Username: "erin",
		Password: "secret1",
		Email:    "erin@example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("by id", func(t *testing.T) {
		u, err := store.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if u.Username != "erin" {
			t.Errorf("GetByID() username = %q, want %q", u.Username, "erin")
		}
	})

	t.Run("by email is case-insensitive", func(t *testing.T) {
		u, err := store.GetByEmail(ctx, "ERIN@example.com")
		if err != nil {
			t.Fatalf("GetByEmail() error = %v", err)
		}
		if u.ID != created.ID {
			t.Errorf("GetByEmail() id = %s, want %s", u.ID.Hex(), created.ID.Hex())
		}
	})

	t.Run("by username is exact", func(t *testing.T) {
		if _, err := store.GetByUsername(ctx, "erin"); err != nil {
			t.Errorf("GetByUsername(erin) error = %v", err)
		}
		if _, err := store.GetByUsername(ctx, "ERIN"); !apperr.IsNotFound(err) {
			t.Errorf("GetByUsername(ERIN) error = %v, want NotFound for case mismatch", err)
		}
	})

	t.Run("missing lookups fail NotFound", func(t *testing.T) {
		if _, err := store.GetByID(ctx, primitive.NewObjectID()); !apperr.IsNotFound(err) {
			t.Errorf("GetByID(missing) error = %v, want NotFound", err)
		}
		if _, err := store.GetByEmail(ctx, "ghost@example.com"); !apperr.IsNotFound(err) {
			t.Errorf("GetByEmail(missing) error = %v, want NotFound", err)
		}
	})
}

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"zoe", "adam"} {
		if _, err := store.Create(ctx, CreateParams{
			Username: name,
			Password: "secret1",
			Email:    name + "@example.com",
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() = %d users, want 2", len(got))
	}
	if got[0].Username != "adam" || got[1].Username != "zoe" {
		t.Errorf("List() order = [%s %s], want sorted by username", got[0].Username, got[1].Username)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateParams{
		Username: "gone",
		Password: "secret1",
		Email:    "gone@example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("Delete(twice) error = %v, want NotFound", err)
	}
}
