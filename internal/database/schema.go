package database

import (
	"context"
	"database/sql"
)

// The username column uses a binary collation so lookups are
// case-sensitive: "Alice" and "alice" are distinct accounts.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username      VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at    DATETIME NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS notes (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		owner_id   BIGINT UNSIGNED NOT NULL,
		title      VARCHAR(255) NOT NULL,
		content    TEXT NOT NULL,
		category   VARCHAR(100) NOT NULL DEFAULT '',
		tags       TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_notes_owner (owner_id),
		CONSTRAINT fk_notes_owner FOREIGN KEY (owner_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the users and notes tables if they do not
// exist yet. Called once at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
