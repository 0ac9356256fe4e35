package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ingredient is a catalog entry used to tag and filter recipes.
// Names are trimmed before storage and globally unique.
type Ingredient struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}
