// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique indexes are the durable backstop for the uniqueness rules the
stores also pre-check: ingredient names, usernames, and emails. The rest
exist for the hot query paths (approval-gated listings, per-user recipes).
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureIngredients(ctx, db); err != nil {
		problems = append(problems, "ingredients: "+err.Error())
	}
	if err := ensureRecipes(ctx, db); err != nil {
		problems = append(problems, "recipes: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New("index setup failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func ensureIngredients(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("ingredients").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_name"),
	})
	return err
}

func ensureRecipes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("recipes").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_created_at"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id"),
		},
		{
			Keys:    bson.D{{Key: "ingredients.name", Value: 1}},
			Options: options.Index().SetName("ingredient_names"),
		},
	})
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
	return err
}
