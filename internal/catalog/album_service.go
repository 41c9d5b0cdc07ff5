package catalog

import (
	"context"
	"time"

	"github.com/awisniew/discoteka/internal/metrics"
	"github.com/awisniew/discoteka/internal/store"
)

// AlbumService is all read/write access to albums beyond raw persistence:
// filtered pagination, tag browsing, and favorite-set mutation.
type AlbumService struct {
	albums    store.AlbumStoreIface
	favorites store.FavoriteStoreIface
}

func NewAlbumService(albums store.AlbumStoreIface, favorites store.FavoriteStoreIface) *AlbumService {
	return &AlbumService{albums: albums, favorites: favorites}
}

// List returns one page of albums ordered by release date descending, with
// category data joined in the same query. categoryID = 0 means no filter.
// Requesting a page past the end is not an error: it yields empty items with
// the correct total.
func (s *AlbumService) List(ctx context.Context, page int, categoryID int64) (*Page[*store.Album], error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.albums.ListPage(ctx, categoryID, page, PageSize)
	if err != nil {
		return nil, err
	}
	if categoryID == 0 {
		metrics.AlbumsTotal.Set(float64(total))
	}
	return &Page[*store.Album]{Items: items, Page: page, Total: total}, nil
}

// ByTag returns every album carrying the given tag, newest release first.
// Unpaginated by contract.
func (s *AlbumService) ByTag(ctx context.Context, tagID int64) ([]*store.Album, error) {
	return s.albums.ListByTag(ctx, tagID)
}

// ToggleFavorite flips favorite membership for (user, album). This is the
// single authoritative entry point for favorite-state changes; the store
// runs the membership check and the write as one transaction, so no caller
// ever observes a half-applied favorite. Returns which outcome occurred.
func (s *AlbumService) ToggleFavorite(ctx context.Context, albumID int64, userID string) (FavoriteOutcome, error) {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return "", err
	}
	added, err := s.favorites.Toggle(ctx, albumID, userID)
	if err != nil {
		return "", err
	}
	outcome := FavoriteRemoved
	if added {
		outcome = FavoriteAdded
	}
	metrics.FavoritesToggledTotal.WithLabelValues(string(outcome)).Inc()
	return outcome, nil
}

// RemoveFavorite removes the album from the user's favorites by album id.
// Returns store.ErrNotFound when no album exists with that id. Removing an
// album the user never favorited is a silent no-op.
func (s *AlbumService) RemoveFavorite(ctx context.Context, albumID int64, userID string) error {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return err
	}
	return s.favorites.Remove(ctx, albumID, userID)
}

// Favorites returns all albums the user has favorited.
func (s *AlbumService) Favorites(ctx context.Context, userID string) ([]*store.Album, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// Save persists the album, stamping updated_at and, for a brand-new record,
// created_at. Tag names, when given, replace the album's tag set.
func (s *AlbumService) Save(ctx context.Context, a *store.Album, tagNames []string) error {
	now := time.Now().UTC()
	a.UpdatedAt = now
	if a.ID == 0 {
		a.CreatedAt = now
	}
	if err := s.albums.Save(ctx, a); err != nil {
		return err
	}
	if tagNames != nil {
		return s.albums.SetTags(ctx, a.ID, tagNames)
	}
	return nil
}

// Get returns a single album with its category and tags resolved.
func (s *AlbumService) Get(ctx context.Context, id int64) (*store.Album, []*store.Tag, error) {
	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tags, err := s.albums.ListTags(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return a, tags, nil
}

// Delete removes the album. Relation rows (tags, favorites, comments) go
// with it; those are pure membership facts, not owned entities.
func (s *AlbumService) Delete(ctx context.Context, id int64) error {
	if _, err := s.albums.GetByID(ctx, id); err != nil {
		return err
	}
	return s.albums.Delete(ctx, id)
}
