package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerAlice uint64 = 1
	ownerBob   uint64 = 2
)

func TestNoteRepoCreateRoundTripsTags(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Create(ctx, ownerAlice, "t", "c", "work", []string{"x", "y"})
	require.NoError(t, err)
	assert.NotZero(t, n.ID)
	assert.Equal(t, []string{"x", "y"}, n.Tags)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)

	list, err := repo.ListByOwner(ctx, ownerAlice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"x", "y"}, list[0].Tags)
	assert.Equal(t, "work", list[0].Category)
}

func TestNoteRepoEmptyTagsNeverBecomeSingleEmptyString(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Create(ctx, ownerAlice, "t", "c", "", nil)
	require.NoError(t, err)
	require.NotNil(t, n.Tags)
	assert.Empty(t, n.Tags)

	got, err := repo.GetByIDAndOwner(ctx, n.ID, ownerAlice)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestNoteRepoListIsOwnerScoped(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, ownerAlice, "a1", "", "", nil)
	require.NoError(t, err)
	_, err = repo.Create(ctx, ownerAlice, "a2", "", "", nil)
	require.NoError(t, err)
	_, err = repo.Create(ctx, ownerBob, "b1", "", "", nil)
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, ownerAlice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// insertion order via id
	assert.Equal(t, "a1", list[0].Title)
	assert.Equal(t, "a2", list[1].Title)

	list, err = repo.ListByOwner(ctx, ownerBob)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].Title)
}

func TestNoteRepoUpdate(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Create(ctx, ownerAlice, "old", "body", "cat", []string{"a"})
	require.NoError(t, err)

	got, err := repo.Update(ctx, n.ID, ownerAlice, "new", "body2", "", []string{"b", "c"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body2", got.Content)
	assert.Equal(t, "", got.Category)
	assert.Equal(t, []string{"b", "c"}, got.Tags)
	assert.Equal(t, n.CreatedAt, got.CreatedAt)
	assert.Equal(t, n.OwnerID, got.OwnerID)
}

func TestNoteRepoUpdateForeignNoteLooksAbsent(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Create(ctx, ownerAlice, "mine", "c", "", nil)
	require.NoError(t, err)

	got, err := repo.Update(ctx, n.ID, ownerBob, "stolen", "c", "", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The note is unchanged for its real owner.
	still, err := repo.GetByIDAndOwner(ctx, n.ID, ownerAlice)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, "mine", still.Title)
}

func TestNoteRepoDelete(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Create(ctx, ownerAlice, "t", "c", "", nil)
	require.NoError(t, err)

	// foreign owner cannot delete
	deleted, err := repo.DeleteByIDAndOwner(ctx, n.ID, ownerBob)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteByIDAndOwner(ctx, n.ID, ownerAlice)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete is a miss
	deleted, err = repo.DeleteByIDAndOwner(ctx, n.ID, ownerAlice)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestNoteRepoGetAbsent(t *testing.T) {
	t.Parallel()

	repo := NewNoteRepo(newTestDB(t))

	got, err := repo.GetByIDAndOwner(context.Background(), 12345, ownerAlice)
	require.NoError(t, err)
	assert.Nil(t, got)
}
