package catalog

import (
	"context"
	"time"

	"github.com/awisniew/discoteka/internal/store"
)

// CommentService is comment listing and mutation with simple ownership
// checks. There is no moderation workflow beyond author-or-admin deletes.
type CommentService struct {
	comments store.CommentStoreIface
	albums   store.AlbumStoreIface
}

func NewCommentService(comments store.CommentStoreIface, albums store.AlbumStoreIface) *CommentService {
	return &CommentService{comments: comments, albums: albums}
}

// ListByAlbum returns all comments for an album, newest first. The album
// must exist.
func (s *CommentService) ListByAlbum(ctx context.Context, albumID int64) ([]*store.Comment, error) {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return nil, err
	}
	return s.comments.ListByAlbum(ctx, albumID)
}

// Add creates a comment on the album by the given author, stamping the
// creation time.
func (s *CommentService) Add(ctx context.Context, albumID int64, authorID, content string) (*store.Comment, error) {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, albumID, authorID, content, time.Now().UTC())
}

// Delete removes a comment. Only the comment's author or an admin may
// delete it; anyone else gets ErrNotCommentAuthor.
func (s *CommentService) Delete(ctx context.Context, commentID int64, actor *store.User) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrNotCommentAuthor
	}
	return s.comments.Delete(ctx, commentID)
}
