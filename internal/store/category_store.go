package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Category represents a row in the categories table.
type Category struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryRow is the listing projection: identity and display fields only.
// Slug and relations are intentionally excluded from list queries.
type CategoryRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryStore is the sqlx-backed implementation of CategoryStoreIface.
type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *CategoryStore) q(query string) string { return s.db.Rebind(query) }

// GetByID returns the category matching id, or ErrNotFound.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := s.db.GetContext(ctx, &c, s.q(`SELECT * FROM categories WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug returns the category matching slug, or ErrNotFound.
func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := s.db.GetContext(ctx, &c, s.q(`SELECT * FROM categories WHERE slug = ?`), slug)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPage returns one page of the category listing projection ordered by
// updated_at DESC, plus the total category count. Pages are 1-based; a page
// past the end yields an empty slice with the correct total.
func (s *CategoryStore) ListPage(ctx context.Context, page, size int) ([]*CategoryRow, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM categories`); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size
	rows := []*CategoryRow{}
	err := s.db.SelectContext(ctx, &rows, s.q(`
		SELECT id, title, created_at, updated_at FROM categories
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`), size, offset)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Save inserts c when it has no id yet, otherwise updates the existing row.
// Timestamps and slug are expected to be stamped by the caller; a title or
// slug collision surfaces as ErrTitleTaken, never silently.
//
// TODO: LastInsertId is not implemented by lib/pq; PostgreSQL deployments
// need an INSERT ... RETURNING id variant here.
func (s *CategoryStore) Save(ctx context.Context, c *Category) error {
	if c.ID == 0 {
		res, err := s.db.ExecContext(ctx, s.q(`
			INSERT INTO categories (title, slug, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`), c.Title, c.Slug, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			if isUniqueConstraintError(err) {
				return ErrTitleTaken
			}
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		c.ID = id
		return nil
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE categories SET title = ?, slug = ?, updated_at = ? WHERE id = ?
	`), c.Title, c.Slug, c.UpdatedAt, c.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrTitleTaken
		}
		return err
	}
	return nil
}

// Delete removes a category by id. Albums referencing it are untouched:
// there is deliberately no cascade, the deletion guard runs upstream.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM categories WHERE id = ?`), id)
	return err
}
