// Package normalize provides helper functions for consistent string normalization
// across the application. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting to
// lowercase. This is the canonical form for storage and lookup.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username normalizes a username by trimming whitespace. Usernames keep
// their case; uniqueness is on the exact trimmed value.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// IngredientName normalizes an ingredient catalog name by trimming whitespace.
func IngredientName(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// CSVParam splits a comma-separated query parameter into trimmed, non-empty
// values. Returns nil for an empty parameter so unspecified filter dimensions
// impose no constraint.
func CSVParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
