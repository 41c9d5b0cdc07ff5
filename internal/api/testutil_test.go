package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/awisniew/discoteka/internal/api"
	"github.com/awisniew/discoteka/internal/auth"
	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/i18n"
	"github.com/awisniew/discoteka/internal/store"
	"github.com/awisniew/discoteka/internal/testutil"
)

const testAdminEmail = "admin@example.com"

// testEnv wires the full router over an in-memory SQLite database and runs
// it behind a real HTTP server so session cookies round-trip.
type testEnv struct {
	Server     *httptest.Server
	Albums     *catalog.AlbumService
	Categories *catalog.CategoryService
	Comments   *catalog.CommentService
	UserStore  *store.UserStore
	TagStore   *store.TagStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	cs := store.NewCategoryStore(db)
	ts := store.NewTagStore(db)
	as := store.NewAlbumStore(db, ts)
	fs := store.NewFavoriteStore(db)
	cms := store.NewCommentStore(db)

	albums := catalog.NewAlbumService(as, fs)
	categories := catalog.NewCategoryService(cs, as)
	comments := catalog.NewCommentService(cms, as)

	sessions := auth.NewSessionManager(db, "sqlite3", time.Hour, false)

	router := api.NewRouter(api.Deps{
		SessionManager: sessions,
		AuthHandlers:   auth.NewHandlers(sessions, us, testAdminEmail),
		AuthMiddleware: auth.NewMiddleware(sessions, us),
		Albums:         albums,
		Categories:     categories,
		Comments:       comments,
		TagStore:       ts,
		Translator:     i18n.New("en"),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		Server:     srv,
		Albums:     albums,
		Categories: categories,
		Comments:   comments,
		UserStore:  us,
		TagStore:   ts,
	}
}

// newClient returns an HTTP client with a cookie jar so the scs session
// cookie persists across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// register signs up a user through the real /auth/register endpoint and
// returns a client holding its session. Registering with testAdminEmail
// yields an admin session.
func register(t *testing.T, env *testEnv, email string) *http.Client {
	t.Helper()
	client := newClient(t)
	body, _ := json.Marshal(map[string]string{
		"email":        email,
		"display_name": "Test User",
		"password":     "correct horse battery staple",
	})
	resp, err := client.Post(env.Server.URL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	return client
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, client *http.Client, method, url string, in, out any) int {
	t.Helper()
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

// seedAlbum creates an album directly through the service layer.
func seedAlbum(t *testing.T, env *testEnv, title string, released time.Time, categoryID *int64) *store.Album {
	t.Helper()
	a := &store.Album{Title: title, ReleaseDate: released, CategoryID: categoryID}
	if err := env.Albums.Save(context.Background(), a, nil); err != nil {
		t.Fatalf("seed album %q: %v", title, err)
	}
	return a
}

// seedCategory creates a category directly through the service layer.
func seedCategory(t *testing.T, env *testEnv, title string) *store.Category {
	t.Helper()
	c := &store.Category{Title: title}
	if err := env.Categories.Save(context.Background(), c); err != nil {
		t.Fatalf("seed category %q: %v", title, err)
	}
	return c
}
