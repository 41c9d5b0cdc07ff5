package migrations

// The catalog schema is a Go migration because the id and timestamp column
// types differ by database driver (AUTOINCREMENT/TIMESTAMP for SQLite,
// BIGSERIAL/TIMESTAMPTZ for PostgreSQL, AUTO_INCREMENT/TIMESTAMP(6) for
// MySQL). Relation tables (album_tags, favorites) cascade with their album;
// albums -> categories deliberately does NOT cascade: the category deletion
// guard runs in the service layer and the plain foreign key backs it up.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCatalog, downCreateCatalog)
}

func upCreateCatalog(ctx context.Context, tx *sql.Tx) error {
	var stmts []string
	switch dialect {
	case "postgres":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    display_name  TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user',
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL UNIQUE,
    slug       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS albums (
    id           BIGSERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    release_date TIMESTAMPTZ NOT NULL,
    category_id  BIGINT REFERENCES categories (id),
    created_at   TIMESTAMPTZ NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS tags (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    slug       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS album_tags (
    album_id BIGINT NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    tag_id   BIGINT NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
    PRIMARY KEY (album_id, tag_id)
)`,
			`CREATE TABLE IF NOT EXISTS favorites (
    user_id  TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    album_id BIGINT NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, album_id)
)`,
			`CREATE TABLE IF NOT EXISTS comments (
    id         BIGSERIAL PRIMARY KEY,
    album_id   BIGINT NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    author_id  TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    content    TEXT,
    created_at TIMESTAMPTZ NOT NULL
)`,
		}
	case "mysql":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id            VARCHAR(36) PRIMARY KEY,
    email         VARCHAR(255) NOT NULL UNIQUE,
    display_name  VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role          VARCHAR(16) NOT NULL DEFAULT 'user',
    created_at    TIMESTAMP(6) NOT NULL,
    updated_at    TIMESTAMP(6) NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS categories (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    title      VARCHAR(100) NOT NULL UNIQUE,
    slug       VARCHAR(100) NOT NULL UNIQUE,
    created_at TIMESTAMP(6) NOT NULL,
    updated_at TIMESTAMP(6) NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS albums (
    id           BIGINT AUTO_INCREMENT PRIMARY KEY,
    title        VARCHAR(255) NOT NULL,
    release_date TIMESTAMP(6) NOT NULL,
    category_id  BIGINT,
    created_at   TIMESTAMP(6) NOT NULL,
    updated_at   TIMESTAMP(6) NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories (id)
)`,
			`CREATE TABLE IF NOT EXISTS tags (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    name       VARCHAR(255) NOT NULL UNIQUE,
    slug       VARCHAR(255) NOT NULL UNIQUE,
    created_at TIMESTAMP(6) NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS album_tags (
    album_id BIGINT NOT NULL,
    tag_id   BIGINT NOT NULL,
    PRIMARY KEY (album_id, tag_id),
    FOREIGN KEY (album_id) REFERENCES albums (id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags (id) ON DELETE CASCADE
)`,
			`CREATE TABLE IF NOT EXISTS favorites (
    user_id  VARCHAR(36) NOT NULL,
    album_id BIGINT NOT NULL,
    PRIMARY KEY (user_id, album_id),
    FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
    FOREIGN KEY (album_id) REFERENCES albums (id) ON DELETE CASCADE
)`,
			`CREATE TABLE IF NOT EXISTS comments (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    album_id   BIGINT NOT NULL,
    author_id  VARCHAR(36) NOT NULL,
    content    TEXT,
    created_at TIMESTAMP(6) NOT NULL,
    FOREIGN KEY (album_id) REFERENCES albums (id) ON DELETE CASCADE,
    FOREIGN KEY (author_id) REFERENCES users (id) ON DELETE CASCADE
)`,
		}
	default: // sqlite3
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    display_name  TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user',
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS categories (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL UNIQUE,
    slug       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS albums (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT NOT NULL,
    release_date TIMESTAMP NOT NULL,
    category_id  INTEGER REFERENCES categories (id),
    created_at   TIMESTAMP NOT NULL,
    updated_at   TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS tags (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL UNIQUE,
    slug       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS album_tags (
    album_id INTEGER NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    tag_id   INTEGER NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
    PRIMARY KEY (album_id, tag_id)
)`,
			`CREATE TABLE IF NOT EXISTS favorites (
    user_id  TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    album_id INTEGER NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, album_id)
)`,
			`CREATE TABLE IF NOT EXISTS comments (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    album_id   INTEGER NOT NULL REFERENCES albums (id) ON DELETE CASCADE,
    author_id  TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    content    TEXT,
    created_at TIMESTAMP NOT NULL
)`,
		}
	}

	stmts = append(stmts,
		`CREATE INDEX IF NOT EXISTS albums_category_id_idx ON albums (category_id)`,
		`CREATE INDEX IF NOT EXISTS albums_release_date_idx ON albums (release_date)`,
		`CREATE INDEX IF NOT EXISTS comments_album_id_idx ON comments (album_id)`,
	)

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create catalog schema: %w", err)
		}
	}
	return nil
}

func downCreateCatalog(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"comments", "favorites", "album_tags", "tags", "albums", "categories", "users"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return err
		}
	}
	return nil
}
