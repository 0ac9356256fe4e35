// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"recetario/internal/app/system/authutil"
	"recetario/internal/app/system/normalize"
	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists user accounts. Passwords go through the configured
// credential scheme; everything else is plain document fields.
type Store struct {
	c      *mongo.Collection
	scheme authutil.Scheme
}

func New(db *mongo.Database, scheme authutil.Scheme) *Store {
	return &Store{c: db.Collection("users"), scheme: scheme}
}

// CreateParams holds the fields for registering a new account.
type CreateParams struct {
	Username string
	Password string
	Email    string
	Status   string // defaults to active
	Role     string // defaults to user
}

// Create registers a new account. Username uniqueness is checked before
// email uniqueness, so a request violating both reports the username
// conflict. The unique indexes back up both pre-checks.
func (s *Store) Create(ctx context.Context, p CreateParams) (models.User, error) {
	username := normalize.Username(p.Username)
	email := normalize.Email(p.Email)

	if err := s.c.FindOne(ctx, bson.M{"username": username}).Err(); err == nil {
		return models.User{}, apperr.Conflict("username %q already exists", username)
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, apperr.Internal(err, "checking username %q", username)
	}
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return models.User{}, apperr.Conflict("email %q already exists", email)
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, apperr.Internal(err, "checking email %q", email)
	}

	stored, err := s.scheme.Hash(p.Password)
	if err != nil {
		return models.User{}, apperr.Internal(err, "hashing password")
	}

	u := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: stored,
		Email:    email,
		Status:   p.Status,
		Role:     p.Role,
	}
	if u.Status == "" {
		u.Status = status.DefaultUser()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if !status.IsValidUser(u.Status) {
		return models.User{}, apperr.BadRequest("invalid user status %q", u.Status)
	}
	if !models.IsValidRole(u.Role) {
		return models.User{}, apperr.BadRequest("invalid role %q", u.Role)
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, apperr.Conflict("username %q already exists", username)
		}
		return models.User{}, apperr.Internal(err, "inserting user %q", username)
	}
	return u, nil
}

// Authenticate verifies an email/password pair.
//
// A missing account and a wrong password produce the same NotFound, so
// callers cannot probe which emails are registered. Accounts that never
// finished registration are rejected with BadRequest.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("wrong user or password")
		}
		return nil, err
	}
	if !s.scheme.Verify(password, u.Password) {
		return nil, apperr.NotFound("wrong user or password")
	}
	if u.Status == status.UserRegisterNotFinished {
		return nil, apperr.BadRequest("user registration is not complete")
	}
	return u, nil
}

// List returns all accounts sorted by username.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.M{"username": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Internal(err, "listing users")
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Internal(err, "decoding users")
	}
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user with id %s not found", id.Hex())
		}
		return nil, apperr.Internal(err, "loading user %s", id.Hex())
	}
	return &u, nil
}

// GetByEmail loads a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

// GetByUsername loads a user by exact trimmed username.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	username = normalize.Username(username)
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user with username %q not found", username)
		}
		return nil, apperr.Internal(err, "loading user %q", username)
	}
	return &u, nil
}

// Delete removes a user by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Internal(err, "deleting user %s", id.Hex())
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("user with id %s not found", id.Hex())
	}
	return nil
}

func (s *Store) getByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalize.Email(email)
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user with email %q not found", email)
		}
		return nil, apperr.Internal(err, "loading user %q", email)
	}
	return &u, nil
}
