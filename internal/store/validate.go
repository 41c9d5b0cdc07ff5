package store

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// ErrTitleInvalid is returned when a category title is blank or outside
	// the 3–100 character range.
	ErrTitleInvalid = errors.New("title must be 3-100 characters and not blank")

	slugStripRe = regexp.MustCompile(`[^a-z0-9-]`)
)

// ValidateCategoryTitle checks that title is non-blank and 3–100 characters.
// Uniqueness is NOT checked here; that is handled at the database layer via
// the unique index on categories.title.
func ValidateCategoryTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	n := utf8.RuneCountInString(trimmed)
	if trimmed == "" || n < 3 || n > 100 {
		return ErrTitleInvalid
	}
	return nil
}

// DeriveSlug derives a URL-safe slug from a title or tag name:
// lowercase, replace spaces/underscores with hyphens, strip non-[a-z0-9-].
// The slug is a pure function of its input; saving an entity with a changed
// title regenerates the slug.
func DeriveSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = slugStripRe.ReplaceAllString(s, "")
	// Collapse consecutive hyphens.
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
