package catalog

import (
	"context"
	"time"

	"github.com/awisniew/discoteka/internal/metrics"
	"github.com/awisniew/discoteka/internal/store"
)

// CategoryService is category CRUD plus the deletion-safety invariant that
// protects referential integrity with albums.
type CategoryService struct {
	categories store.CategoryStoreIface
	albums     store.AlbumStoreIface
}

func NewCategoryService(categories store.CategoryStoreIface, albums store.AlbumStoreIface) *CategoryService {
	return &CategoryService{categories: categories, albums: albums}
}

// List returns one page of the category listing projection (id, timestamps,
// title) ordered by updated_at descending.
func (s *CategoryService) List(ctx context.Context, page int) (*Page[*store.CategoryRow], error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.categories.ListPage(ctx, page, PageSize)
	if err != nil {
		return nil, err
	}
	metrics.CategoriesTotal.Set(float64(total))
	return &Page[*store.CategoryRow]{Items: items, Page: page, Total: total}, nil
}

// Get returns a single category, or store.ErrNotFound.
func (s *CategoryService) Get(ctx context.Context, id int64) (*store.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// Save persists the category. Title format validation happened upstream;
// here the slug is recomputed from the (possibly changed) title, updated_at
// always advances, and created_at is set only for a brand-new record. A
// uniqueness violation at flush time surfaces as store.ErrTitleTaken.
func (s *CategoryService) Save(ctx context.Context, c *store.Category) error {
	now := time.Now().UTC()
	c.Slug = store.DeriveSlug(c.Title)
	c.UpdatedAt = now
	if c.ID == 0 {
		c.CreatedAt = now
	}
	return s.categories.Save(ctx, c)
}

// CanBeDeleted reports whether the category is referenced by zero albums.
// Any failure while counting is mapped to false: the deletion guard is a
// yes/no safety answer and it fails closed, never open.
func (s *CategoryService) CanBeDeleted(ctx context.Context, id int64) bool {
	count, err := s.albums.CountByCategory(ctx, id)
	if err != nil {
		metrics.CategoryDeletesBlockedTotal.Inc()
		return false
	}
	if count != 0 {
		metrics.CategoryDeletesBlockedTotal.Inc()
		return false
	}
	return true
}

// Delete removes the category unconditionally. Callers must sequence
// CanBeDeleted before this; the query and the action stay separate so a
// caller can surface the reason to a user before committing.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

// DeleteIfUnused composes the guard and the delete for callers that want a
// single fail-closed operation. Returns ErrCategoryInUse when the guard
// refuses, store.ErrNotFound when the category does not exist.
func (s *CategoryService) DeleteIfUnused(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}
	if !s.CanBeDeleted(ctx, id) {
		return ErrCategoryInUse
	}
	return s.Delete(ctx, id)
}
