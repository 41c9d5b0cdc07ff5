package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// FavoriteStore manages the favorites relation between users and albums.
// This is the single code path allowed to mutate favorite membership.
type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *FavoriteStore) q(query string) string { return s.db.Rebind(query) }

// Toggle flips favorite membership for (user, album) and reports whether the
// album was added (true) or removed (false). The membership check and the
// write run inside one transaction, and the primary key on (user_id,
// album_id) makes a double add impossible even under concurrent toggles: the
// losing writer's insert fails the commit instead of silently winning.
func (s *FavoriteStore) Toggle(ctx context.Context, albumID int64, userID string) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int
	err = tx.GetContext(ctx, &count,
		tx.Rebind(`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND album_id = ?`),
		userID, albumID)
	if err != nil {
		return false, err
	}

	added := count == 0
	if added {
		_, err = tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO favorites (user_id, album_id) VALUES (?, ?)`),
			userID, albumID)
	} else {
		_, err = tx.ExecContext(ctx,
			tx.Rebind(`DELETE FROM favorites WHERE user_id = ? AND album_id = ?`),
			userID, albumID)
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return added, nil
}

// Remove deletes the membership row for (user, album). Removing an absent
// favorite is a no-op, not an error.
func (s *FavoriteStore) Remove(ctx context.Context, albumID int64, userID string) error {
	_, err := s.db.ExecContext(ctx,
		s.q(`DELETE FROM favorites WHERE user_id = ? AND album_id = ?`),
		userID, albumID)
	return err
}

// IsFavorite returns true if the user has favorited the album.
func (s *FavoriteStore) IsFavorite(ctx context.Context, albumID int64, userID string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		s.q(`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND album_id = ?`),
		userID, albumID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns all albums the user has favorited, with categories joined.
func (s *FavoriteStore) ListByUser(ctx context.Context, userID string) ([]*Album, error) {
	albums := []*Album{}
	err := s.db.SelectContext(ctx, &albums, s.q(`
		SELECT `+albumColumns+`
		FROM albums a
		INNER JOIN favorites f ON f.album_id = a.id
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE f.user_id = ?
		ORDER BY a.release_date DESC, a.id DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	return albums, nil
}
