// Package catalog holds the domain services governing albums, categories,
// tags, favorites, and comments. Services compose the store layer and hold
// no state of their own between calls.
package catalog

import "errors"

// PageSize is the fixed items-per-page count used by every listing.
const PageSize = 10

var (
	// ErrCategoryInUse is returned when deleting a category that is still
	// referenced by at least one album, or whose usage check failed.
	ErrCategoryInUse = errors.New("category is still in use")

	// ErrNotCommentAuthor is returned when a non-author, non-admin user
	// attempts to delete a comment.
	ErrNotCommentAuthor = errors.New("only the author or an admin may delete a comment")
)

// Page is a bounded slice of a listing plus pagination metadata. Total is
// the full matching count, invariant across pages for a fixed filter.
type Page[T any] struct {
	Items []T
	Page  int
	Total int
}

// FavoriteOutcome reports which way a favorite toggle went.
type FavoriteOutcome string

const (
	FavoriteAdded   FavoriteOutcome = "added"
	FavoriteRemoved FavoriteOutcome = "removed"
)

// MessageKey returns the translation key for the outcome. The translation
// itself is the i18n package's concern; the services only decide the key.
func (o FavoriteOutcome) MessageKey() string {
	if o == FavoriteAdded {
		return "favorite.added"
	}
	return "favorite.removed"
}
