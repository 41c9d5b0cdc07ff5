package api

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/awisniew/discoteka/docs/swagger"
	"github.com/awisniew/discoteka/internal/auth"
	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/i18n"
	"github.com/awisniew/discoteka/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	Albums         *catalog.AlbumService
	Categories     *catalog.CategoryService
	Comments       *catalog.CommentService
	TagStore       store.TagStoreIface
	Translator     *i18n.Translator
}

// NewRouter assembles the full chi router: auth endpoints, the /api/v1
// surface, metrics, and the swagger UI.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	r.Post("/auth/register", deps.AuthHandlers.Register)
	r.Post("/auth/login", deps.AuthHandlers.Login)
	r.Post("/auth/logout", deps.AuthHandlers.Logout)

	r.Mount("/api/v1", NewAPIRouter(deps))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}

// NewAPIRouter creates the chi sub-router for /api/v1. Reads are public;
// favoriting and commenting need a session; catalog writes need admin.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	albums := &albumsAPIHandler{albums: deps.Albums, translator: deps.Translator}
	categories := &categoriesAPIHandler{categories: deps.Categories, translator: deps.Translator}
	tags := &tagsAPIHandler{tags: deps.TagStore, albums: deps.Albums}
	comments := &commentsAPIHandler{comments: deps.Comments}

	// Public reads.
	r.Get("/albums", albums.List)
	r.Get("/albums/{id}", albums.Get)
	r.Get("/albums/{id}/comments", comments.List)
	r.Get("/categories", categories.List)
	r.Get("/categories/{id}", categories.Get)
	r.Get("/tags", tags.List)
	r.Get("/tags/{id}/albums", tags.ListAlbums)

	// Any authenticated user: favorites and comments.
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireUser)
		r.Get("/favorites", albums.ListFavorites)
		r.Put("/albums/{id}/favorite", albums.ToggleFavorite)
		r.Delete("/albums/{id}/favorite", albums.RemoveFavorite)
		r.Post("/albums/{id}/comments", comments.Create)
		r.Delete("/comments/{id}", comments.Delete)
	})

	// Admin only: catalog writes.
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireUser)
		r.Use(deps.AuthMiddleware.RequireAdmin)
		r.Post("/albums", albums.Create)
		r.Put("/albums/{id}", albums.Update)
		r.Delete("/albums/{id}", albums.Delete)
		r.Post("/categories", categories.Create)
		r.Put("/categories/{id}", categories.Update)
		r.Get("/categories/{id}/deletable", categories.Deletable)
		r.Delete("/categories/{id}", categories.Delete)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json
// on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
