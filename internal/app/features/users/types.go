package users

// Request DTOs for the user account endpoints.

type createUserInput struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Status   string `json:"status" validate:"omitempty,oneof=register_not_finished full_registered active"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type authInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type recoveryCodeInput struct {
	Email string `json:"email" validate:"required,email"`
}

type changePasswordInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,max=128"`
	RecoveryCode string `json:"recoveryCode" validate:"required,len=6,numeric"`
}

type favoriteInput struct {
	RecipeID string `json:"recipeId" validate:"required"`
}
