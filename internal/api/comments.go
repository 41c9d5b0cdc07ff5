package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/awisniew/discoteka/internal/auth"
	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/store"
)

// commentsAPIHandler provides REST handlers for album comments.
type commentsAPIHandler struct {
	comments *catalog.CommentService
}

// List returns all comments on an album, newest first.
// GET /api/v1/albums/{id}/comments
//
// @Summary      List comments
// @Tags         Comments
// @Produce      json
// @Param        id   path      int  true  "Album id"
// @Success      200  {array}  CommentResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{id}/comments [get]
func (h *commentsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	albumID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	comments, err := h.comments.ListByAlbum(r.Context(), albumID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "album not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a comment on an album by the session user.
// POST /api/v1/albums/{id}/comments
//
// @Summary      Add a comment
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Album id"
// @Param        body  body      CreateCommentRequest  true  "Comment to add"
// @Success      201   {object}  CommentResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{id}/comments [post]
func (h *commentsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	albumID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid album id", "bad_request")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required", "bad_request")
		return
	}

	comment, err := h.comments.Add(r.Context(), albumID, user.ID, req.Content)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "album not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// Delete removes a comment. Only the author or an admin may delete.
// DELETE /api/v1/comments/{id}
//
// @Summary      Delete a comment
// @Tags         Comments
// @Param        id  path  int  true  "Comment id"
// @Success      204  "deleted"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{id} [delete]
func (h *commentsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment id", "bad_request")
		return
	}

	err := h.comments.Delete(r.Context(), id, user)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "comment not found", "not_found")
		return
	}
	if errors.Is(err, catalog.ErrNotCommentAuthor) {
		writeError(w, http.StatusForbidden, "forbidden", "forbidden")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
