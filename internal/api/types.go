package api

import (
	"time"

	"github.com/awisniew/discoteka/internal/store"
)

// --- Album types ---

// CategoryRef is the weak category reference embedded in album responses.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// AlbumResponse is the JSON representation of a single album.
type AlbumResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	ReleaseDate time.Time    `json:"release_date"`
	Category    *CategoryRef `json:"category"`
	Tags        []string     `json:"tags,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// AlbumListResponse is the paginated response for album list endpoints.
type AlbumListResponse struct {
	Albums []AlbumResponse `json:"albums"`
	Page   int             `json:"page"`
	Total  int             `json:"total"`
}

// SaveAlbumRequest is the request body for POST /albums and PUT /albums/{id}.
type SaveAlbumRequest struct {
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	CategoryID  int64     `json:"category_id,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// ToggleFavoriteResponse reports which way a favorite toggle went.
type ToggleFavoriteResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// --- Category types ---

// CategoryResponse is the JSON representation of a single category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse is the paginated response for the category listing.
// Slug is absent here: the listing projection carries display fields only.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Page       int                `json:"page"`
	Total      int                `json:"total"`
}

// SaveCategoryRequest is the request body for POST /categories and
// PUT /categories/{id}. The slug is derived server-side from the title.
type SaveCategoryRequest struct {
	Title string `json:"title"`
}

// DeletableResponse is the answer of the category deletion guard.
type DeletableResponse struct {
	Deletable bool `json:"deletable"`
}

// --- Tag types ---

// TagResponse is the JSON representation of a tag.
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// --- Comment types ---

// CommentResponse is the JSON representation of a comment.
type CommentResponse struct {
	ID         int64     `json:"id"`
	AlbumID    int64     `json:"album_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCommentRequest is the request body for POST /albums/{id}/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func toAlbumResponse(a *store.Album, tags []*store.Tag) AlbumResponse {
	resp := AlbumResponse{
		ID:          a.ID,
		Title:       a.Title,
		ReleaseDate: a.ReleaseDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.CategoryID != nil {
		resp.Category = &CategoryRef{ID: *a.CategoryID, Title: a.CategoryTitle, Slug: a.CategorySlug}
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, t.Name)
	}
	return resp
}

func toCommentResponse(c *store.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AlbumID:    c.AlbumID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}
