// Package sanitize strips markup from user-supplied text before storage.
//
// Recipe descriptions, step text, and rating comments come straight from
// clients and are echoed back to every reader, so they pass through a strict
// bluemonday policy that removes all HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// TextSlice sanitizes every element in place and returns the slice.
func TextSlice(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}
