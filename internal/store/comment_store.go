package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Comment represents a row in the comments table. A comment belongs to
// exactly one album and one author.
type Comment struct {
	ID        int64     `db:"id"`
	AlbumID   int64     `db:"album_id"`
	AuthorID  string    `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	// Joined author display field for listings.
	AuthorName string `db:"author_name"`
}

// CommentStore is the sqlx-backed implementation of CommentStoreIface.
type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *CommentStore) q(query string) string { return s.db.Rebind(query) }

const commentColumns = `
	co.id, co.album_id, co.author_id, co.content, co.created_at,
	COALESCE(u.display_name, '') AS author_name`

// GetByID returns the comment matching id, or ErrNotFound.
func (s *CommentStore) GetByID(ctx context.Context, id int64) (*Comment, error) {
	var c Comment
	err := s.db.GetContext(ctx, &c, s.q(`
		SELECT `+commentColumns+`
		FROM comments co
		LEFT JOIN users u ON u.id = co.author_id
		WHERE co.id = ?
	`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByAlbum returns all comments for an album, newest first.
func (s *CommentStore) ListByAlbum(ctx context.Context, albumID int64) ([]*Comment, error) {
	comments := []*Comment{}
	err := s.db.SelectContext(ctx, &comments, s.q(`
		SELECT `+commentColumns+`
		FROM comments co
		LEFT JOIN users u ON u.id = co.author_id
		WHERE co.album_id = ?
		ORDER BY co.created_at DESC, co.id DESC
	`), albumID)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a new comment and returns the stored record.
func (s *CommentStore) Create(ctx context.Context, albumID int64, authorID, content string, createdAt time.Time) (*Comment, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO comments (album_id, author_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`), albumID, authorID, content, createdAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a comment by id. Authorization runs upstream.
func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM comments WHERE id = ?`), id)
	return err
}
