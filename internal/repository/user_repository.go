package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/notes-backend/internal/model"
)

// ErrUsernameExists is returned by Create when the username is
// already registered. Uniqueness is enforced by the database, so the
// check is race-safe under concurrent registrations.
var ErrUsernameExists = errors.New("username already exists")

// UserRepo encapsulates all database queries related to user
// accounts. It depends on a sql.DB connection pool which is injected
// at startup and in tests.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// FindByUsername fetches a user by exact, case-sensitive username.
// An absent user is not an error: the method returns (nil, nil) and
// the caller decides how to handle it.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = "SELECT id, username, password_hash, created_at FROM users WHERE username = ? LIMIT 1"
	var u model.User
	err := r.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user with an already-hashed password and
// returns the stored record. A duplicate username surfaces as
// ErrUsernameExists via the unique index on users.username.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	now := time.Now().UTC().Truncate(time.Second)
	const q = "INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, username, passwordHash, now)
	if err != nil {
		if isDuplicateErr(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           uint64(id),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

// isDuplicateErr recognizes unique-constraint violations. MySQL
// reports error 1062; SQLite (used in tests) mentions UNIQUE.
func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "1062") || strings.Contains(strings.ToUpper(msg), "UNIQUE")
}
