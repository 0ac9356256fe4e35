package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account of the application.
//
// Username and email are each globally unique at creation time. Password is
// stored through the configured credential scheme (see authutil); the JSON
// tag hides it from every API response.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	Email    string             `bson:"email" json:"email"` // stored lowercase

	Status string `bson:"status" json:"status"`
	Role   string `bson:"role" json:"role"`

	// LastRecoveryCode is the single active password-recovery code.
	// Empty when no recovery is in flight; cleared on use.
	LastRecoveryCode string `bson:"last_recovery_code,omitempty" json:"-"`

	// FavoriteRecipeIDs holds recipe ids with no duplicates.
	FavoriteRecipeIDs []string `bson:"favorite_recipe_ids,omitempty" json:"favoriteRecipeIds,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsValidRole checks if a role is recognized.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// HasFavorite reports whether recipeID is already in the favorites list.
func (u *User) HasFavorite(recipeID string) bool {
	for _, id := range u.FavoriteRecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}
