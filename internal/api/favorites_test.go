package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/awisniew/discoteka/internal/api"
)

func TestToggleFavoriteEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := register(t, env, "fan@example.com")

	a := seedAlbum(t, env, "Loved", time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	url := fmt.Sprintf("%s/api/v1/albums/%d/favorite", env.Server.URL, a.ID)

	var resp api.ToggleFavoriteResponse
	if status := doJSON(t, user, http.MethodPut, url, nil, &resp); status != http.StatusOK {
		t.Fatalf("first toggle status = %d, want 200", status)
	}
	if resp.Outcome != "added" {
		t.Errorf("outcome = %q, want added", resp.Outcome)
	}
	if resp.Message != "Album added to your favorites." {
		t.Errorf("message = %q, want the added-to-favorites text", resp.Message)
	}

	if status := doJSON(t, user, http.MethodPut, url, nil, &resp); status != http.StatusOK {
		t.Fatalf("second toggle status = %d, want 200", status)
	}
	if resp.Outcome != "removed" {
		t.Errorf("outcome = %q, want removed", resp.Outcome)
	}
	if resp.Message != "Album removed from your favorites." {
		t.Errorf("message = %q, want the removed-from-favorites text", resp.Message)
	}
}

func TestToggleFavoriteRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	a := seedAlbum(t, env, "Public", time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), nil)

	url := fmt.Sprintf("%s/api/v1/albums/%d/favorite", env.Server.URL, a.ID)
	if status := doJSON(t, newClient(t), http.MethodPut, url, nil, nil); status != http.StatusUnauthorized {
		t.Errorf("anonymous toggle status = %d, want 401", status)
	}
}

func TestToggleFavoriteMissingAlbum(t *testing.T) {
	env := newTestEnv(t)
	user := register(t, env, "fan@example.com")

	var errResp api.ErrorResponse
	url := env.Server.URL + "/api/v1/albums/424242/favorite"
	if status := doJSON(t, user, http.MethodPut, url, nil, &errResp); status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if errResp.Code != "not_found" {
		t.Errorf("code = %q, want not_found", errResp.Code)
	}
}

func TestRemoveFavoriteEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := register(t, env, "fan@example.com")

	a := seedAlbum(t, env, "Once Loved", time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	toggleURL := fmt.Sprintf("%s/api/v1/albums/%d/favorite", env.Server.URL, a.ID)

	if status := doJSON(t, user, http.MethodPut, toggleURL, nil, nil); status != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", status)
	}
	if status := doJSON(t, user, http.MethodDelete, toggleURL, nil, nil); status != http.StatusNoContent {
		t.Fatalf("remove status = %d, want 204", status)
	}
	// Removing again is still 204; the operation is idempotent.
	if status := doJSON(t, user, http.MethodDelete, toggleURL, nil, nil); status != http.StatusNoContent {
		t.Errorf("second remove status = %d, want 204", status)
	}
	// A missing album is a 404, not a silent success.
	missing := env.Server.URL + "/api/v1/albums/424242/favorite"
	if status := doJSON(t, user, http.MethodDelete, missing, nil, nil); status != http.StatusNotFound {
		t.Errorf("remove missing status = %d, want 404", status)
	}
}

func TestListFavoritesEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := register(t, env, "fan@example.com")
	other := register(t, env, "other@example.com")

	a := seedAlbum(t, env, "Mine", time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	url := fmt.Sprintf("%s/api/v1/albums/%d/favorite", env.Server.URL, a.ID)
	if status := doJSON(t, user, http.MethodPut, url, nil, nil); status != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", status)
	}

	var mine api.AlbumListResponse
	if status := doJSON(t, user, http.MethodGet, env.Server.URL+"/api/v1/favorites", nil, &mine); status != http.StatusOK {
		t.Fatalf("favorites status = %d, want 200", status)
	}
	if len(mine.Albums) != 1 || mine.Albums[0].Title != "Mine" {
		t.Errorf("favorites = %+v, want single Mine", mine.Albums)
	}

	// Favorites are per user.
	var theirs api.AlbumListResponse
	if status := doJSON(t, other, http.MethodGet, env.Server.URL+"/api/v1/favorites", nil, &theirs); status != http.StatusOK {
		t.Fatalf("other favorites status = %d, want 200", status)
	}
	if len(theirs.Albums) != 0 {
		t.Errorf("other favorites = %d, want 0", len(theirs.Albums))
	}
}
