// Package status provides canonical status values used throughout the application.
//
// Using these constants instead of string literals ensures consistency and
// makes refactoring easier. The constants are plain strings (not a custom type)
// for compatibility with MongoDB queries.
package status

// Recipe statuses. A recipe is created pending and the only transition is
// the one-way approve.
const (
	RecipePending  = "pending_to_approve"
	RecipeApproved = "approved"
)

// IsValidRecipe returns true if s is a recognized recipe status.
func IsValidRecipe(s string) bool {
	return s == RecipePending || s == RecipeApproved
}

// Rating statuses. New ratings always start pending; moderation moves them
// to approved or rejected.
const (
	RatingPending  = "pending"
	RatingApproved = "approved"
	RatingRejected = "rejected"
)

// IsValidRating returns true if s is a recognized rating status.
func IsValidRating(s string) bool {
	return s == RatingPending || s == RatingApproved || s == RatingRejected
}

// User statuses. Recovery-code flows require FullRegistered; authentication
// rejects RegisterNotFinished.
const (
	UserRegisterNotFinished = "register_not_finished"
	UserFullRegistered      = "full_registered"
	UserActive              = "active"
)

// IsValidUser returns true if s is a recognized user status.
func IsValidUser(s string) bool {
	return s == UserRegisterNotFinished || s == UserFullRegistered || s == UserActive
}

// DefaultUser returns the status assigned to newly created accounts.
func DefaultUser() string {
	return UserActive
}
