package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Album represents a row in the albums table. The category is a weak
// reference: a nullable foreign id plus display fields joined at query time.
// Albums never own their category's lifecycle.
type Album struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"`
	CategoryID  *int64    `db:"category_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Joined category display fields; empty when the album has no category.
	CategoryTitle string `db:"category_title"`
	CategorySlug  string `db:"category_slug"`
}

// AlbumStore is the sqlx-backed implementation of AlbumStoreIface.
type AlbumStore struct {
	db   *sqlx.DB
	tags *TagStore
}

func NewAlbumStore(db *sqlx.DB, tags *TagStore) *AlbumStore {
	return &AlbumStore{db: db, tags: tags}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *AlbumStore) q(query string) string { return s.db.Rebind(query) }

const albumColumns = `
	a.id, a.title, a.release_date, a.category_id, a.created_at, a.updated_at,
	COALESCE(c.title, '') AS category_title,
	COALESCE(c.slug, '') AS category_slug`

// GetByID returns the album matching id with its category joined, or ErrNotFound.
func (s *AlbumStore) GetByID(ctx context.Context, id int64) (*Album, error) {
	var a Album
	err := s.db.GetContext(ctx, &a, s.q(`
		SELECT `+albumColumns+`
		FROM albums a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.id = ?
	`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListPage returns one page of albums ordered by release_date DESC with the
// category joined in the same round trip, plus the total matching count.
// categoryID = 0 means no filter. Pages are 1-based; a page past the end
// yields an empty slice with the correct total.
func (s *AlbumStore) ListPage(ctx context.Context, categoryID int64, page, size int) ([]*Album, int, error) {
	where := ``
	var args []interface{}
	if categoryID != 0 {
		where = ` WHERE c.id = ?`
		args = append(args, categoryID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM albums a LEFT JOIN categories c ON c.id = a.category_id` + where
	if err := s.db.GetContext(ctx, &total, s.q(countQuery), args...); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size
	query := `
		SELECT ` + albumColumns + `
		FROM albums a
		LEFT JOIN categories c ON c.id = a.category_id` + where + `
		ORDER BY a.release_date DESC, a.id DESC
		LIMIT ? OFFSET ?`
	fetchArgs := append(args, size, offset)

	albums := []*Album{}
	if err := s.db.SelectContext(ctx, &albums, s.q(query), fetchArgs...); err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// ListByTag returns every album carrying the given tag. No pagination by
// contract; tag browsing exposes the full result set.
func (s *AlbumStore) ListByTag(ctx context.Context, tagID int64) ([]*Album, error) {
	albums := []*Album{}
	err := s.db.SelectContext(ctx, &albums, s.q(`
		SELECT `+albumColumns+`
		FROM albums a
		INNER JOIN album_tags at ON at.album_id = a.id
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE at.tag_id = ?
		ORDER BY a.release_date DESC, a.id DESC
	`), tagID)
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// Save inserts a when it has no id yet, otherwise updates the existing row.
// Timestamps are expected to be stamped by the caller.
func (s *AlbumStore) Save(ctx context.Context, a *Album) error {
	if a.ID == 0 {
		res, err := s.db.ExecContext(ctx, s.q(`
			INSERT INTO albums (title, release_date, category_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`), a.Title, a.ReleaseDate, a.CategoryID, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = id
		return nil
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE albums SET title = ?, release_date = ?, category_id = ?, updated_at = ?
		WHERE id = ?
	`), a.Title, a.ReleaseDate, a.CategoryID, a.UpdatedAt, a.ID)
	return err
}

// Delete removes an album by id. CASCADE deletes handle album_tags,
// favorites, and comments.
func (s *AlbumStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM albums WHERE id = ?`), id)
	return err
}

// SetTags replaces the tag set for an album. Tags are upserted by name.
func (s *AlbumStore) SetTags(ctx context.Context, albumID int64, tagNames []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Clear existing tags for this album.
	_, err = tx.ExecContext(ctx, s.q(`DELETE FROM album_tags WHERE album_id = ?`), albumID)
	if err != nil {
		return err
	}

	// Upsert each tag and link it.
	for _, name := range tagNames {
		tag, err := s.tags.upsertTx(ctx, tx, name)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO album_tags (album_id, tag_id) VALUES (?, ?)
		`), albumID, tag.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListTags returns all tags associated with an album.
func (s *AlbumStore) ListTags(ctx context.Context, albumID int64) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT t.* FROM tags t
		INNER JOIN album_tags at ON at.tag_id = t.id
		WHERE at.album_id = ?
		ORDER BY t.name ASC
	`), albumID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// CountByCategory returns the exact number of albums referencing categoryID.
// This backs the category deletion guard; errors propagate so the guard can
// fail closed.
func (s *AlbumStore) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		s.q(`SELECT COUNT(*) FROM albums WHERE category_id = ?`), categoryID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
