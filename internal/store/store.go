package store

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTitleTaken is returned when a category title or slug collides with
	// an existing one at flush time.
	ErrTitleTaken = errors.New("title is already taken")

	// ErrEmailTaken is returned when a registration email is already in use.
	ErrEmailTaken = errors.New("email is already registered")
)

// CategoryStoreIface exposes all category data operations.
// No handler may query the DB directly; all access goes through the stores.
type CategoryStoreIface interface {
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	ListPage(ctx context.Context, page, size int) ([]*CategoryRow, int, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

// AlbumStoreIface exposes all album data operations, including the
// category-usage count backing the deletion guard.
type AlbumStoreIface interface {
	GetByID(ctx context.Context, id int64) (*Album, error)
	ListPage(ctx context.Context, categoryID int64, page, size int) ([]*Album, int, error)
	ListByTag(ctx context.Context, tagID int64) ([]*Album, error)
	Save(ctx context.Context, a *Album) error
	Delete(ctx context.Context, id int64) error
	SetTags(ctx context.Context, albumID int64, tagNames []string) error
	ListTags(ctx context.Context, albumID int64) ([]*Tag, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

// FavoriteStoreIface exposes favorite-membership operations. Membership is a
// boolean fact keyed by (user, album); there is nothing to count or order.
type FavoriteStoreIface interface {
	Toggle(ctx context.Context, albumID int64, userID string) (added bool, err error)
	Remove(ctx context.Context, albumID int64, userID string) error
	IsFavorite(ctx context.Context, albumID int64, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*Album, error)
}

// TagStoreIface exposes tag operations.
type TagStoreIface interface {
	Upsert(ctx context.Context, name string) (*Tag, error)
	GetByID(ctx context.Context, id int64) (*Tag, error)
	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	ListAll(ctx context.Context) ([]*Tag, error)
}

// CommentStoreIface exposes comment operations.
type CommentStoreIface interface {
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]*Comment, error)
	Create(ctx context.Context, albumID int64, authorID, content string, createdAt time.Time) (*Comment, error)
	Delete(ctx context.Context, id int64) error
}

// isUniqueConstraintError checks whether err indicates a unique constraint
// violation. Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
