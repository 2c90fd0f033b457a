package model

import "time"

// Note represents a personal text note as stored in the `notes`
// table. Every note belongs to exactly one owner and is only ever
// read or mutated through owner-scoped repository calls. Tags are
// kept as an ordered slice in memory; the repository encodes them
// into a single delimited column on write and decodes on read.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – user ID of the note owner (never exposed in JSON).
//  Title     – non-empty title.
//  Content   – note body, may be empty.
//  Category  – optional free-form category; empty means none.
//  Tags      – ordered tags, possibly empty, duplicates allowed.
//  CreatedAt – set once at creation (UTC).
//  UpdatedAt – equal to CreatedAt at creation, refreshed on update.
type Note struct {
	ID        uint64    `json:"id"`         // notes.id
	OwnerID   uint64    `json:"-"`          // notes.owner_id
	Title     string    `json:"title"`      // notes.title
	Content   string    `json:"content"`    // notes.content
	Category  string    `json:"category"`   // notes.category
	Tags      []string  `json:"tags"`       // notes.tags (delimited column)
	CreatedAt time.Time `json:"created_at"` // notes.created_at
	UpdatedAt time.Time `json:"updated_at"` // notes.updated_at
}
