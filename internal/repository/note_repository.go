// Package repository contains data access logic separated from HTTP
// handlers. Every note query takes the owner's user ID as a mandatory
// filter: a note owned by someone else behaves exactly like a note
// that does not exist, so nothing about other users' data leaks
// through this layer.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/notes-backend/internal/model"
)

// NoteRepo encapsulates all database queries related to notes.
type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{db: db} }

const noteColumns = "id, owner_id, title, content, category, tags, created_at, updated_at"

func scanNote(row interface{ Scan(...any) error }) (*model.Note, error) {
	var n model.Note
	var tags string
	if err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.Category, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.Tags = decodeTags(tags)
	return &n, nil
}

// ListByOwner returns all notes belonging to the given owner, ordered
// by id so the order is stable across reads of the same snapshot.
func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Note, error) {
	const q = "SELECT " + noteColumns + " FROM notes WHERE owner_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a single note by id, but only if it belongs
// to the given owner. Absent or foreign notes both return (nil, nil).
func (r *NoteRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Note, error) {
	const q = "SELECT " + noteColumns + " FROM notes WHERE id = ? AND owner_id = ? LIMIT 1"
	n, err := scanNote(r.db.QueryRowContext(ctx, q, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Create inserts a new note for the owner. created_at and updated_at
// are set to the same instant.
func (r *NoteRepo) Create(ctx context.Context, ownerID uint64, title, content, category string, tags []string) (*model.Note, error) {
	now := time.Now().UTC().Truncate(time.Second)
	const q = `INSERT INTO notes (owner_id, title, content, category, tags, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, ownerID, title, content, category, encodeTags(tags), now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Note{
		ID:        uint64(id),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		Category:  category,
		Tags:      decodeTags(encodeTags(tags)),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces title, content, category and tags of a note owned
// by ownerID, refreshing updated_at and leaving created_at and the
// owner untouched. The UPDATE itself carries the ownership filter, so
// there is no window between an ownership check and the write. If the
// note is absent or owned by someone else, the method returns
// (nil, nil) rather than an error.
func (r *NoteRepo) Update(ctx context.Context, id, ownerID uint64, title, content, category string, tags []string) (*model.Note, error) {
	now := time.Now().UTC().Truncate(time.Second)
	const q = `UPDATE notes
	           SET title = ?, content = ?, category = ?, tags = ?, updated_at = ?
	           WHERE id = ? AND owner_id = ?`
	if _, err := r.db.ExecContext(ctx, q, title, content, category, encodeTags(tags), now, id, ownerID); err != nil {
		return nil, err
	}
	// Re-read through the same ownership filter. RowsAffected is not
	// a reliable existence signal here: MySQL reports zero affected
	// rows when the new values equal the old ones.
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner removes a note if it belongs to the owner and
// reports whether a row was actually deleted.
func (r *NoteRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) (bool, error) {
	const q = "DELETE FROM notes WHERE id = ? AND owner_id = ?"
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
