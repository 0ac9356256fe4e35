package status

import "testing"

func TestIsValidRecipe(t *testing.T) {
	if !IsValidRecipe(RecipePending) || !IsValidRecipe(RecipeApproved) {
		t.Error("recipe statuses should validate")
	}
	if IsValidRecipe("rejected") {
		t.Error("recipes have no rejected status")
	}
}

func TestIsValidRating(t *testing.T) {
	for _, s := range []string{RatingPending, RatingApproved, RatingRejected} {
		if !IsValidRating(s) {
			t.Errorf("IsValidRating(%q) = false", s)
		}
	}
	if IsValidRating("pending_to_approve") {
		t.Error("recipe status must not validate as rating status")
	}
}

func TestIsValidUser(t *testing.T) {
	for _, s := range []string{UserRegisterNotFinished, UserFullRegistered, UserActive} {
		if !IsValidUser(s) {
			t.Errorf("IsValidUser(%q) = false", s)
		}
	}
	if IsValidUser("disabled") {
		t.Error("IsValidUser(\"disabled\") = true")
	}
	if DefaultUser() != UserActive {
		t.Errorf("DefaultUser() = %q, want %q", DefaultUser(), UserActive)
	}
}
