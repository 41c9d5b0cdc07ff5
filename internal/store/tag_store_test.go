package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/awisniew/discoteka/internal/store"
	"github.com/awisniew/discoteka/internal/testutil"
)

func TestTagUpsertCreatesOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	ts := store.NewTagStore(db)
	ctx := context.Background()

	first, err := ts.Upsert(ctx, "Synth Pop")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Slug != "synth-pop" {
		t.Errorf("slug = %q, want synth-pop", first.Slug)
	}

	// Same slug, different casing and spacing: no second row.
	second, err := ts.Upsert(ctx, "  synth pop ")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second id = %d, want %d", second.ID, first.ID)
	}

	all, err := ts.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("tag count = %d, want 1", len(all))
	}
}

func TestTagGetBySlugNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	ts := store.NewTagStore(db)

	if _, err := ts.GetBySlug(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetBySlug err = %v, want ErrNotFound", err)
	}
}
