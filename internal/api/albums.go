package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/awisniew/discoteka/internal/auth"
	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/i18n"
	"github.com/awisniew/discoteka/internal/store"
)

// albumsAPIHandler provides REST handlers for album listing, CRUD, and
// favorite toggling.
type albumsAPIHandler struct {
	albums     *catalog.AlbumService
	translator *i18n.Translator
}

// List returns one page of albums, optionally filtered by category.
// GET /api/v1/albums?page=N&category=ID
//
// @Summary      List albums
// @Description  Returns a page of albums ordered by release date descending. Pass category to filter.
// @Tags         Albums
// @Produce      json
// @Param        page      query  int  false  "1-based page number"
// @Param        category  query  int  false  "Category id filter; 0 or absent means all albums"
// @Success      200  {object}  AlbumListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /albums [get]
func (h *albumsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	var categoryID int64
	if c := r.URL.Query().Get("category"); c != "" {
		parsed, err := strconv.ParseInt(c, 10, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid category id", "bad_request")
			return
		}
		categoryID = parsed
	}

	result, err := h.albums.List(r.Context(), page, categoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := AlbumListResponse{Albums: make([]AlbumResponse, 0, len(result.Items)), Page: result.Page, Total: result.Total}
	for _, a := range result.Items {
		resp.Albums = append(resp.Albums, toAlbumResponse(a, nil))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single album with its category and tags.
// GET /api/v1/albums/{id}
//
// @Summary      Get an album
// @Tags         Albums
// @Produce      json
// @Param        id   path      int  true  "Album id"
// @Success      200  {object}  AlbumResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{id} [get]
func (h *albumsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	album, tags, err := h.albums.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "album not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, toAlbumResponse(album, tags))
}

// Create creates a new album.
// POST /api/v1/albums
//
// @Summary      Create an album
// @Tags         Albums
// @Accept       json
// @Produce      json
// @Param        body  body      SaveAlbumRequest  true  "Album to create"
// @Success      201   {object}  AlbumResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /albums [post]
func (h *albumsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

// Update modifies an existing album.
// PUT /api/v1/albums/{id}
//
// @Summary      Update an album
// @Tags         Albums
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Album id"
// @Param        body  body      SaveAlbumRequest  true  "New album data"
// @Success      200   {object}  AlbumResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{id} [put]
func (h *albumsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}
	h.save(w, r, id)
}

func (h *albumsAPIHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	var req SaveAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "bad_request")
		return
	}
	if req.ReleaseDate.IsZero() {
		writeError(w, http.StatusBadRequest, "release_date is required", "bad_request")
		return
	}

	album := &store.Album{ID: id, Title: req.Title, ReleaseDate: req.ReleaseDate}
	if req.CategoryID != 0 {
		album.CategoryID = &req.CategoryID
	}
	if id != 0 {
		existing, _, err := h.albums.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "album not found", "not_found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
			return
		}
		album.CreatedAt = existing.CreatedAt
	}

	if err := h.albums.Save(r.Context(), album, req.Tags); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	saved, tags, err := h.albums.Get(r.Context(), album.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, toAlbumResponse(saved, tags))
}

// Delete removes an album.
// DELETE /api/v1/albums/{id}
//
// @Summary      Delete an album
// @Tags         Albums
// @Param        id  path  int  true  "Album id"
// @Success      204  "deleted"
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{id} [delete]
func (h *albumsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	err := h.albums.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "album not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite flips favorite membership for the session user.
// PUT /api/v1/albums/{id}/favorite
//
// @Summary      Toggle a favorite
// @Description  Adds the album to the caller's favorites, or removes it if already present.
// @Tags         Favorites
// @Produce      json
// @Param        id   path      int  true  "Album id"
// @Success      200  {object}  ToggleFavoriteResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{id}/favorite [put]
func (h *albumsAPIHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	outcome, err := h.albums.ToggleFavorite(r.Context(), id, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.translator.MessageFor("album.notFound"), "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, ToggleFavoriteResponse{
		Outcome: string(outcome),
		Message: h.translator.MessageFor(outcome.MessageKey()),
	})
}

// RemoveFavorite removes the album from the session user's favorites.
// Removing an album that was never favorited is a silent no-op.
// DELETE /api/v1/albums/{id}/favorite
//
// @Summary      Remove a favorite
// @Tags         Favorites
// @Param        id  path  int  true  "Album id"
// @Success      204  "removed or already absent"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{id}/favorite [delete]
func (h *albumsAPIHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	err := h.albums.RemoveFavorite(r.Context(), id, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.translator.MessageFor("album.notFound"), "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites returns the session user's favorited albums.
// GET /api/v1/favorites
//
// @Summary      List favorites
// @Tags         Favorites
// @Produce      json
// @Success      200  {object}  AlbumListResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /favorites [get]
func (h *albumsAPIHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	albums, err := h.albums.Favorites(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := AlbumListResponse{Albums: make([]AlbumResponse, 0, len(albums)), Page: 1, Total: len(albums)}
	for _, a := range albums {
		resp.Albums = append(resp.Albums, toAlbumResponse(a, nil))
	}
	writeJSON(w, http.StatusOK, resp)
}
