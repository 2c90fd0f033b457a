package model

import "time"

// User represents an application account as stored in the `users`
// table. Usernames are unique and immutable once registered. The
// password is never stored in plain text; only a bcrypt hash is
// persisted, and it is excluded from JSON output so a User can be
// embedded in API responses without leaking credentials.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique, case-sensitive login name.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – timestamp of registration (UTC).
type User struct {
	ID           uint64    `json:"id"`       // users.id
	Username     string    `json:"username"` // users.username
	PasswordHash string    `json:"-"`        // users.password_hash
	CreatedAt    time.Time `json:"-"`        // users.created_at
}
