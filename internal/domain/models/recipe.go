package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is the central document of the catalog. Ratings, steps, ingredient
// lines, and pictures are embedded sub-documents, not references.
//
// A recipe is created in status pending_to_approve and becomes visible in
// default listings only after an explicit approve. There is no un-approve.
type Recipe struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description" json:"description"`
	Ingredients       []IngredientLine   `bson:"ingredients" json:"ingredients"`
	Steps             []Step             `bson:"steps" json:"steps"`
	PrincipalPictures []MediaResource    `bson:"principal_pictures,omitempty" json:"principalPictures,omitempty"`
	UserID            string             `bson:"user_id" json:"userId"`
	Category          []string           `bson:"category" json:"category"`
	Duration          int                `bson:"duration" json:"duration"` // minutes
	Difficulty        string             `bson:"difficulty" json:"difficulty"`
	Servings          int                `bson:"servings" json:"servings"`
	Status            string             `bson:"status" json:"status"`
	Ratings           []Rating           `bson:"ratings,omitempty" json:"ratings,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}

// IngredientLine is one ingredient of a recipe: a free-form name plus an
// amount. The name is what the include/exclude search filters match against.
type IngredientLine struct {
	Name        string  `bson:"name" json:"name"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	MeasureType string  `bson:"measure_type" json:"measureType"`
}

// Step is one preparation step, optionally illustrated.
type Step struct {
	ID            string `bson:"id" json:"id"`
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description" json:"description"`
	MediaResource string `bson:"media_resource,omitempty" json:"mediaResource,omitempty"`
}

// MediaResource is a picture or video attached to a recipe.
type MediaResource struct {
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Rating is a per-user score embedded in a recipe. The rater's display name
// is denormalized at write time and not refreshed if the user later renames.
//
// A rating is addressable for update only by the (ID, UserID) composite:
// knowing the rating id alone is not enough to modify someone else's rating.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Score     int       `bson:"score" json:"score"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Measure types accepted for ingredient lines.
const (
	MeasureGrams       = "grams"
	MeasureKilograms   = "kilograms"
	MeasureMilliliters = "milliliters"
	MeasureCups        = "cups"
	MeasureTablespoons = "tablespoons"
	MeasureUnit        = "unit"
	MeasurePinch       = "pinch"
)

// AllMeasureTypes returns the accepted measure types for ingredient lines.
func AllMeasureTypes() []string {
	return []string{
		MeasureGrams,
		MeasureKilograms,
		MeasureMilliliters,
		MeasureCups,
		MeasureTablespoons,
		MeasureUnit,
		MeasurePinch,
	}
}
