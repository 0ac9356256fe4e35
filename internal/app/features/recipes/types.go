package recipes

import (
	"recetario/internal/app/system/sanitize"
	"recetario/internal/domain/models"
)

// Request DTOs. Validation tags are enforced before any store call; all
// user-supplied free text passes through sanitize before storage.

type ingredientLineInput struct {
	Name        string  `json:"name" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	MeasureType string  `json:"measureType" validate:"required,oneof=grams kilograms milliliters cups tablespoons unit pinch"`
}

type stepInput struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	MediaResource string `json:"mediaResource"`
}

type mediaResourceInput struct {
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
}

type createRecipeInput struct {
	Name              string                `json:"name" validate:"required"`
	Description       string                `json:"description" validate:"required"`
	Ingredients       []ingredientLineInput `json:"ingredients" validate:"required,min=1,dive"`
	Steps             []stepInput           `json:"steps" validate:"required,min=1,dive"`
	PrincipalPictures []mediaResourceInput  `json:"principalPictures" validate:"omitempty,dive"`
	UserID            string                `json:"userId" validate:"required"`
	Category          []string              `json:"category" validate:"required,min=1"`
	Duration          int                   `json:"duration" validate:"required,gt=0"`
	Difficulty        string                `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Servings          int                   `json:"servings" validate:"required,gt=0"`
}

// updateRecipeInput carries a partial update: nil fields stay unchanged.
type updateRecipeInput struct {
	Name              *string                `json:"name" validate:"omitempty,min=1"`
	Description       *string                `json:"description" validate:"omitempty,min=1"`
	Ingredients       *[]ingredientLineInput `json:"ingredients" validate:"omitempty,min=1,dive"`
	Steps             *[]stepInput           `json:"steps" validate:"omitempty,min=1,dive"`
	PrincipalPictures *[]mediaResourceInput  `json:"principalPictures" validate:"omitempty,dive"`
	Category          *[]string              `json:"category" validate:"omitempty,min=1"`
	Duration          *int                   `json:"duration" validate:"omitempty,gt=0"`
	Difficulty        *string                `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Servings          *int                   `json:"servings" validate:"omitempty,gt=0"`
}

type addRatingInput struct {
	UserID  string `json:"userId" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type updateRatingInput struct {
	UserID  string  `json:"userId" validate:"required"`
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (in createRecipeInput) toModel() models.Recipe {
	return models.Recipe{
		Name:              sanitize.Text(in.Name),
		Description:       sanitize.Text(in.Description),
		Ingredients:       toIngredientLines(in.Ingredients),
		Steps:             toSteps(in.Steps),
		PrincipalPictures: toMediaResources(in.PrincipalPictures),
		UserID:            in.UserID,
		Category:          sanitize.TextSlice(in.Category),
		Duration:          in.Duration,
		Difficulty:        in.Difficulty,
		Servings:          in.Servings,
	}
}

func toIngredientLines(in []ingredientLineInput) []models.IngredientLine {
	out := make([]models.IngredientLine, len(in))
	for i, l := range in {
		out[i] = models.IngredientLine{
			Name:        sanitize.Text(l.Name),
			Quantity:    l.Quantity,
			MeasureType: l.MeasureType,
		}
	}
	return out
}

func toSteps(in []stepInput) []models.Step {
	out := make([]models.Step, len(in))
	for i, st := range in {
		out[i] = models.Step{
			ID:            st.ID,
			Title:         sanitize.Text(st.Title),
			Description:   sanitize.Text(st.Description),
			MediaResource: st.MediaResource,
		}
	}
	return out
}

func toMediaResources(in []mediaResourceInput) []models.MediaResource {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.MediaResource, len(in))
	for i, m := range in {
		out[i] = models.MediaResource{
			URL:         m.URL,
			Description: sanitize.Text(m.Description),
		}
	}
	return out
}
