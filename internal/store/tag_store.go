package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Tag represents a row in the tags table.
type Tag struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// TagStore is the sqlx-backed implementation of TagStoreIface.
type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *TagStore) q(query string) string { return s.db.Rebind(query) }

// Upsert creates a tag if it doesn't exist (by slug), or returns the existing one.
func (s *TagStore) Upsert(ctx context.Context, name string) (*Tag, error) {
	slug := DeriveSlug(name)

	var existing Tag
	err := s.db.GetContext(ctx, &existing, s.q(`SELECT * FROM tags WHERE slug = ?`), slug)
	if err == nil {
		return &existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO tags (name, slug, created_at) VALUES (?, ?, ?)
	`), strings.TrimSpace(name), slug, now)
	if err != nil {
		// Race: another caller inserted first. Re-fetch.
		if isUniqueConstraintError(err) {
			err = s.db.GetContext(ctx, &existing, s.q(`SELECT * FROM tags WHERE slug = ?`), slug)
			if err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Tag{ID: id, Name: strings.TrimSpace(name), Slug: slug, CreatedAt: now}, nil
}

// upsertTx is the transactional variant used by AlbumStore.SetTags.
func (s *TagStore) upsertTx(ctx context.Context, tx *sqlx.Tx, name string) (*Tag, error) {
	slug := DeriveSlug(name)

	var existing Tag
	err := tx.GetContext(ctx, &existing, tx.Rebind(`SELECT * FROM tags WHERE slug = ?`), slug)
	if err == nil {
		return &existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO tags (name, slug, created_at) VALUES (?, ?, ?)
	`), strings.TrimSpace(name), slug, now)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Tag{ID: id, Name: strings.TrimSpace(name), Slug: slug, CreatedAt: now}, nil
}

// GetByID returns the tag matching id, or ErrNotFound.
func (s *TagStore) GetByID(ctx context.Context, id int64) (*Tag, error) {
	var t Tag
	err := s.db.GetContext(ctx, &t, s.q(`SELECT * FROM tags WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetBySlug returns the tag matching slug, or ErrNotFound.
func (s *TagStore) GetBySlug(ctx context.Context, slug string) (*Tag, error) {
	var t Tag
	err := s.db.GetContext(ctx, &t, s.q(`SELECT * FROM tags WHERE slug = ?`), slug)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns all tags ordered by name.
func (s *TagStore) ListAll(ctx context.Context) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, `SELECT * FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return tags, nil
}
