package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/store"
	"github.com/awisniew/discoteka/internal/testutil"
)

type albumTestEnv struct {
	albums     *catalog.AlbumService
	categories *catalog.CategoryService
	user       *store.User
	favStore   *store.FavoriteStore
}

func newAlbumTestEnv(t *testing.T) *albumTestEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	cs := store.NewCategoryStore(db)
	as := store.NewAlbumStore(db, store.NewTagStore(db))
	fs := store.NewFavoriteStore(db)
	us := store.NewUserStore(db)

	u, err := us.Create(context.Background(), "listener@example.com", "Listener", "x", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return &albumTestEnv{
		albums:     catalog.NewAlbumService(as, fs),
		categories: catalog.NewCategoryService(cs, as),
		user:       u,
		favStore:   fs,
	}
}

func (e *albumTestEnv) saveAlbum(t *testing.T, title string, released time.Time, categoryID *int64, tags []string) *store.Album {
	t.Helper()
	a := &store.Album{Title: title, ReleaseDate: released, CategoryID: categoryID}
	if err := e.albums.Save(context.Background(), a, tags); err != nil {
		t.Fatalf("save album %q: %v", title, err)
	}
	return a
}

func TestAlbumListPagination(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		env.saveAlbum(t, fmt.Sprintf("Album %02d", i), base.AddDate(0, 0, i), nil, nil)
	}

	wantLens := []int{10, 10, 5, 0}
	for i, wantLen := range wantLens {
		page, err := env.albums.List(ctx, i+1, 0)
		if err != nil {
			t.Fatalf("List page %d: %v", i+1, err)
		}
		if page.Total != 25 {
			t.Errorf("page %d: total = %d, want 25", i+1, page.Total)
		}
		if len(page.Items) != wantLen {
			t.Errorf("page %d: len = %d, want %d", i+1, len(page.Items), wantLen)
		}
	}
}

func TestAlbumListCategoryFilter(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	jazz := &store.Category{Title: "Jazz"}
	if err := env.categories.Save(ctx, jazz); err != nil {
		t.Fatalf("save category: %v", err)
	}

	env.saveAlbum(t, "In Category", time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), &jazz.ID, nil)
	env.saveAlbum(t, "Outside", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)

	filtered, err := env.albums.List(ctx, 1, jazz.ID)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if filtered.Total != 1 || len(filtered.Items) != 1 {
		t.Fatalf("filtered total=%d len=%d, want 1/1", filtered.Total, len(filtered.Items))
	}
	if filtered.Items[0].Title != "In Category" {
		t.Errorf("filtered item = %q, want In Category", filtered.Items[0].Title)
	}

	all, err := env.albums.List(ctx, 1, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if all.Total != 2 {
		t.Errorf("unfiltered total = %d, want 2", all.Total)
	}
}

func TestToggleFavoriteOutcomes(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	a := env.saveAlbum(t, "Nevermind", time.Date(1991, 9, 24, 0, 0, 0, 0, time.UTC), nil, nil)

	outcome, err := env.albums.ToggleFavorite(ctx, a.ID, env.user.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if outcome != catalog.FavoriteAdded {
		t.Errorf("first outcome = %q, want %q", outcome, catalog.FavoriteAdded)
	}
	if outcome.MessageKey() != "favorite.added" {
		t.Errorf("message key = %q, want favorite.added", outcome.MessageKey())
	}

	outcome, err = env.albums.ToggleFavorite(ctx, a.ID, env.user.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if outcome != catalog.FavoriteRemoved {
		t.Errorf("second outcome = %q, want %q", outcome, catalog.FavoriteRemoved)
	}
	if outcome.MessageKey() != "favorite.removed" {
		t.Errorf("message key = %q, want favorite.removed", outcome.MessageKey())
	}
}

func TestToggleFavoriteMissingAlbum(t *testing.T) {
	env := newAlbumTestEnv(t)

	_, err := env.albums.ToggleFavorite(context.Background(), 424242, env.user.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("toggle missing album err = %v, want ErrNotFound", err)
	}
}

func TestRemoveFavorite(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	a := env.saveAlbum(t, "Dummy", time.Date(1994, 8, 22, 0, 0, 0, 0, time.UTC), nil, nil)

	if _, err := env.albums.ToggleFavorite(ctx, a.ID, env.user.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := env.albums.RemoveFavorite(ctx, a.ID, env.user.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Removing again is a silent no-op; the album exists, the favorite
	// does not.
	if err := env.albums.RemoveFavorite(ctx, a.ID, env.user.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	// A nonexistent album is an error, distinct from the no-op above.
	if err := env.albums.RemoveFavorite(ctx, 424242, env.user.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("remove on missing album err = %v, want ErrNotFound", err)
	}
}

func TestFavoritesListing(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	a := env.saveAlbum(t, "Favored", time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	env.saveAlbum(t, "Ignored", time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)

	if _, err := env.albums.ToggleFavorite(ctx, a.ID, env.user.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	favs, err := env.albums.Favorites(ctx, env.user.ID)
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].Title != "Favored" {
		t.Errorf("favorites = %v, want single Favored", favs)
	}
}

func TestAlbumSaveStampsTimestamps(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	before := time.Now().UTC()
	a := env.saveAlbum(t, "Stamped", time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	if a.CreatedAt.Before(before) || a.UpdatedAt.Before(before) {
		t.Errorf("timestamps not stamped: created=%v updated=%v", a.CreatedAt, a.UpdatedAt)
	}

	created := a.CreatedAt
	a.Title = "Restamped"
	if err := env.albums.Save(ctx, a, nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !a.CreatedAt.Equal(created) {
		t.Errorf("created_at changed on update: %v -> %v", created, a.CreatedAt)
	}
}

func TestAlbumGetResolvesTags(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	a := env.saveAlbum(t, "Tagged", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), nil, []string{"Indie", "Lo Fi"})

	got, tags, err := env.albums.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Tagged" {
		t.Errorf("title = %q, want Tagged", got.Title)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
}

func TestAlbumDeleteRemovesFavorites(t *testing.T) {
	env := newAlbumTestEnv(t)
	ctx := context.Background()

	a := env.saveAlbum(t, "Goner", time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	if _, err := env.albums.ToggleFavorite(ctx, a.ID, env.user.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := env.albums.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	favs, err := env.favStore.ListByUser(ctx, env.user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("favorites after album delete = %d, want 0", len(favs))
	}

	if err := env.albums.Delete(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete missing err = %v, want ErrNotFound", err)
	}
}
