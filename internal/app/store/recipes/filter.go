// internal/app/store/recipes/filter.go
package recipestore

import (
	"regexp"

	"recetario/internal/app/system/status"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterParams describes one recipe search. A zero-value dimension imposes
// no constraint; dimensions that are set are AND-combined, values within a
// dimension are OR-combined.
type FilterParams struct {
	// Include keeps recipes containing at least one ingredient whose name
	// matches any entry (case-insensitive substring).
	Include []string
	// Exclude drops recipes containing any ingredient matching any entry
	// (case-insensitive substring).
	Exclude []string
	// Name is a case-insensitive substring match on the recipe name.
	Name string
	// UserIDs matches the owning user id exactly, OR-combined.
	UserIDs []string
	// Categories matches any element of the category list
	// (case-insensitive substring), OR-combined.
	Categories []string
	// OnlyApproved adds status == approved, evaluated last.
	OnlyApproved bool
}

// BuildFilter translates FilterParams into a Mongo filter document.
//
// It is a pure function so the query composition is testable without a
// database. Every search term is QuoteMeta-escaped before becoming a regex:
// the match is literal-substring, and user input can never smuggle regex
// operators into the query.
func BuildFilter(p FilterParams) bson.M {
	var and []bson.M

	if rx := substringRegexes(p.Include); len(rx) > 0 {
		and = append(and, bson.M{"ingredients.name": bson.M{"$in": rx}})
	}
	if rx := substringRegexes(p.Exclude); len(rx) > 0 {
		and = append(and, bson.M{"ingredients.name": bson.M{"$nin": rx}})
	}
	if p.Name != "" {
		and = append(and, bson.M{"name": substringRegex(p.Name)})
	}
	if ids := nonEmpty(p.UserIDs); len(ids) > 0 {
		and = append(and, bson.M{"user_id": bson.M{"$in": ids}})
	}
	if rx := substringRegexes(p.Categories); len(rx) > 0 {
		and = append(and, bson.M{"category": bson.M{"$in": rx}})
	}
	if p.OnlyApproved {
		and = append(and, bson.M{"status": status.RecipeApproved})
	}

	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func substringRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func substringRegexes(terms []string) []primitive.Regex {
	var rx []primitive.Regex
	for _, t := range nonEmpty(terms) {
		rx = append(rx, substringRegex(t))
	}
	return rx
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
