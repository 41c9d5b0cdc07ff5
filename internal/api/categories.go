package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/i18n"
	"github.com/awisniew/discoteka/internal/store"
)

// categoriesAPIHandler provides REST handlers for category CRUD and the
// deletion guard.
type categoriesAPIHandler struct {
	categories *catalog.CategoryService
	translator *i18n.Translator
}

// List returns one page of categories ordered by last update.
// GET /api/v1/categories?page=N
//
// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Param        page  query  int  false  "1-based page number"
// @Success      200  {object}  CategoryListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (h *categoriesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.categories.List(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(result.Items)), Page: result.Page, Total: result.Total}
	for _, c := range result.Items {
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single category including its slug.
// GET /api/v1/categories/{id}
//
// @Summary      Get a category
// @Tags         Categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  CategoryResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [get]
func (h *categoriesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id", "bad_request")
		return
	}

	c, err := h.categories.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "category not found", "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create creates a new category.
// POST /api/v1/categories
//
// @Summary      Create a category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        body  body      SaveCategoryRequest  true  "Category to create"
// @Success      201   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /categories [post]
func (h *categoriesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

// Update renames an existing category. The slug is regenerated from the new
// title.
// PUT /api/v1/categories/{id}
//
// @Summary      Update a category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Category id"
// @Param        body  body      SaveCategoryRequest  true  "New category data"
// @Success      200   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /categories/{id} [put]
func (h *categoriesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id", "bad_request")
		return
	}
	h.save(w, r, id)
}

func (h *categoriesAPIHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	var req SaveCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}

	// Format validation happens here, upstream of the service.
	if err := store.ValidateCategoryTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "validation_failed")
		return
	}

	c := &store.Category{ID: id, Title: req.Title}
	if id != 0 {
		existing, err := h.categories.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found", "not_found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
			return
		}
		c.CreatedAt = existing.CreatedAt
	}

	err := h.categories.Save(r.Context(), c)
	if errors.Is(err, store.ErrTitleTaken) {
		writeError(w, http.StatusConflict, "title is already taken", "title_taken")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, toCategoryResponse(c))
}

// Deletable answers the deletion guard without acting on it, so a caller
// can present the reason to a user before committing.
// GET /api/v1/categories/{id}/deletable
//
// @Summary      Check whether a category can be deleted
// @Tags         Categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  DeletableResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id}/deletable [get]
func (h *categoriesAPIHandler) Deletable(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id", "bad_request")
		return
	}

	if _, err := h.categories.Get(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found", "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, DeletableResponse{Deletable: h.categories.CanBeDeleted(r.Context(), id)})
}

// Delete removes a category after running the usage guard. A category still
// referenced by albums, or whose usage check failed, is never deleted.
// DELETE /api/v1/categories/{id}
//
// @Summary      Delete a category
// @Description  Refused with 409 while any album references the category.
// @Tags         Categories
// @Param        id  path  int  true  "Category id"
// @Success      204  "deleted"
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /categories/{id} [delete]
func (h *categoriesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id", "bad_request")
		return
	}

	err := h.categories.DeleteIfUnused(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "category not found", "not_found")
	case errors.Is(err, catalog.ErrCategoryInUse):
		writeError(w, http.StatusConflict, h.translator.MessageFor("category.inUse"), "category_in_use")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func toCategoryResponse(c *store.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Title:     c.Title,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
