package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/store"
)

// tagsAPIHandler provides REST handlers for tag browsing.
type tagsAPIHandler struct {
	tags   store.TagStoreIface
	albums *catalog.AlbumService
}

// List returns all tags.
// GET /api/v1/tags
//
// @Summary      List tags
// @Tags         Tags
// @Produce      json
// @Success      200  {array}  TagResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tags [get]
func (h *tagsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, TagResponse{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListAlbums returns every album carrying the tag. Unpaginated by contract.
// GET /api/v1/tags/{id}/albums
//
// @Summary      List albums by tag
// @Tags         Tags
// @Produce      json
// @Param        id   path      int  true  "Tag id"
// @Success      200  {object}  AlbumListResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id}/albums [get]
func (h *tagsAPIHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid tag id", "bad_request")
		return
	}

	// Verify the tag exists.
	_, err := h.tags.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "tag not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	albums, err := h.albums.ByTag(r.Context(), id)
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
