package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	DisplayName  string    `db:"display_name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new user record on registration.
// adminEmail: if non-empty and matches email, role is set to "admin".
// A duplicate email surfaces as ErrTitleTaken's sibling, ErrEmailTaken.
func (s *UserStore) Create(ctx context.Context, email, displayName, passwordHash, adminEmail string) (*User, error) {
	role := "user"
	if adminEmail != "" && email == adminEmail {
		role = "admin"
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (id, email, display_name, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, email, displayName, passwordHash, role, now, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByEmail returns the user matching email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE email = ?`), email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user matching id, or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns all users ordered by display name.
func (s *UserStore) ListAll(ctx context.Context) ([]*User, error) {
	users := []*User{}
	err := s.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY display_name ASC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole sets the role for the given user and returns the updated record.
func (s *UserStore) UpdateRole(ctx context.Context, id, role string) (*User, error) {
	_, err := s.db.ExecContext(ctx, s.q(`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`),
		role, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
