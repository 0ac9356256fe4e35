package recipestore

import (
	"reflect"
	"testing"

	"recetario/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter_Empty(t *testing.T) {
	got := BuildFilter(FilterParams{})
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("BuildFilter(zero) = %v, want empty filter", got)
	}
}

func TestBuildFilter_BlankValuesIgnored(t *testing.T) {
	got := BuildFilter(FilterParams{
		Include:    []string{""},
		Exclude:    []string{""},
		UserIDs:    []string{""},
		Categories: []string{""},
	})
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("BuildFilter(blank values) = %v, want empty filter", got)
	}
}

func TestBuildFilter_AllDimensions(t *testing.T) {
	got := BuildFilter(FilterParams{
		Include:      []string{"flour"},
		Exclude:      []string{"nuts"},
		Name:         "cake",
		UserIDs:      []string{"u1", "u2"},
		Categories:   []string{"dessert"},
		OnlyApproved: true,
	})

	and, ok := got["$and"].([]bson.M)
	if !ok {
		t.Fatalf("BuildFilter() = %v, want $and clause", got)
	}
	if len(and) != 6 {
		t.Fatalf("len($and) = %d, want 6", len(and))
	}

	want := []bson.M{
		{"ingredients.name": bson.M{"$in": []primitive.Regex{{Pattern: "flour", Options: "i"}}}},
		{"ingredients.name": bson.M{"$nin": []primitive.Regex{{Pattern: "nuts", Options: "i"}}}},
		{"name": primitive.Regex{Pattern: "cake", Options: "i"}},
		{"user_id": bson.M{"$in": []string{"u1", "u2"}}},
		{"category": bson.M{"$in": []primitive.Regex{{Pattern: "dessert", Options: "i"}}}},
		{"status": "approved"},
	}
	for i := range want {
		if !reflect.DeepEqual(and[i], want[i]) {
			t.Errorf("$and[%d] = %v, want %v", i, and[i], want[i])
		}
	}
}

func TestBuildFilter_OnlyApprovedIsLast(t *testing.T) {
	got := BuildFilter(FilterParams{Name: "pie", OnlyApproved: true})
	and := got["$and"].([]bson.M)

	last := and[len(and)-1]
	if !reflect.DeepEqual(last, bson.M{"status": "approved"}) {
		t.Errorf("last clause = %v, want status approved", last)
	}
}

func TestBuildFilter_EscapesRegexMetacharacters(t *testing.T) {
	got := BuildFilter(FilterParams{Name: "a.b*c"})
	and := got["$and"].([]bson.M)

	rx, ok := and[0]["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("name clause = %v, want regex", and[0])
	}
	if rx.Pattern != `a\.b\*c` {
		t.Errorf("pattern = %q, want metacharacters escaped", rx.Pattern)
	}
	if rx.Options != "i" {
		t.Errorf("options = %q, want %q", rx.Options, "i")
	}
}

func TestFindRating(t *testing.T) {
	ratings := []models.Rating{
		{ID: "r1", UserID: "alice"},
		{ID: "r2", UserID: "bob"},
	}

	tests := []struct {
		name     string
		ratingID string
		userID   string
		wantIdx  int
		wantOK   bool
	}{
		{"match", "r1", "alice", 0, true},
		{"second match", "r2", "bob", 1, true},
		{"right id wrong user", "r1", "bob", -1, false},
		{"wrong id right user", "r2", "alice", -1, false},
		{"no match", "r9", "carol", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := FindRating(ratings, tt.ratingID, tt.userID)
			if idx != tt.wantIdx || ok != tt.wantOK {
				t.Errorf("FindRating(%q, %q) = (%d, %v), want (%d, %v)",
					tt.ratingID, tt.userID, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}
