package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/store"
	"github.com/awisniew/discoteka/internal/testutil"
)

type commentTestEnv struct {
	comments *catalog.CommentService
	album    *store.Album
	author   *store.User
	other    *store.User
	admin    *store.User
}

func newCommentTestEnv(t *testing.T) *commentTestEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	us := store.NewUserStore(db)
	as := store.NewAlbumStore(db, store.NewTagStore(db))
	cs := store.NewCommentStore(db)
	favs := store.NewFavoriteStore(db)

	author, err := us.Create(ctx, "author@example.com", "Author", "x", "")
	if err != nil {
		t.Fatalf("seed author: %v", err)
	}
	other, err := us.Create(ctx, "other@example.com", "Other", "x", "")
	if err != nil {
		t.Fatalf("seed other: %v", err)
	}
	admin, err := us.Create(ctx, "admin@example.com", "Admin", "x", "admin@example.com")
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	albums := catalog.NewAlbumService(as, favs)
	album := &store.Album{Title: "Commented", ReleaseDate: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := albums.Save(ctx, album, nil); err != nil {
		t.Fatalf("seed album: %v", err)
	}

	return &commentTestEnv{
		comments: catalog.NewCommentService(cs, as),
		album:    album,
		author:   author,
		other:    other,
		admin:    admin,
	}
}

func TestCommentAddAndList(t *testing.T) {
	env := newCommentTestEnv(t)
	ctx := context.Background()

	c, err := env.comments.Add(ctx, env.album.ID, env.author.ID, "Great record.")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.AuthorName != "Author" {
		t.Errorf("author_name = %q, want Author", c.AuthorName)
	}
	if c.CreatedAt.IsZero() {
		t.Error("created_at not stamped")
	}

	list, err := env.comments.ListByAlbum(ctx, env.album.ID)
	if err != nil {
		t.Fatalf("ListByAlbum: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len = %d, want 1", len(list))
	}
}

func TestCommentAddMissingAlbum(t *testing.T) {
	env := newCommentTestEnv(t)

	_, err := env.comments.Add(context.Background(), 424242, env.author.ID, "void")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("add on missing album err = %v, want ErrNotFound", err)
	}
}

func TestCommentDeleteOwnership(t *testing.T) {
	env := newCommentTestEnv(t)
	ctx := context.Background()

	c, err := env.comments.Add(ctx, env.album.ID, env.author.ID, "mine")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A stranger may not delete it.
	if err := env.comments.Delete(ctx, c.ID, env.other); !errors.Is(err, catalog.ErrNotCommentAuthor) {
		t.Errorf("stranger delete err = %v, want ErrNotCommentAuthor", err)
	}

	// The author may.
	if err := env.comments.Delete(ctx, c.ID, env.author); err != nil {
		t.Fatalf("author delete: %v", err)
	}

	// An admin may delete anyone's comment.
	c2, err := env.comments.Add(ctx, env.album.ID, env.author.ID, "also mine")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := env.comments.Delete(ctx, c2.ID, env.admin); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if err := env.comments.Delete(ctx, c2.ID, env.admin); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete missing err = %v, want ErrNotFound", err)
	}
}
