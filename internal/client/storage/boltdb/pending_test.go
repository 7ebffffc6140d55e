package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending_Enqueue_CoalescesByKey(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, "rep_1", json.RawMessage(`{"v":1}`)))
	require.NoError(t, store.Enqueue(ctx, "rep_1", json.RawMessage(`{"v":2}`)))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one pending entry per key")
	assert.Equal(t, "rep_1", entries[0].Key)
	assert.JSONEq(t, `{"v":2}`, string(entries[0].Data), "last intent wins")
}

func TestPending_List_OldestFirst(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, "rep_b", json.RawMessage(`{}`)))
	require.NoError(t, store.Enqueue(ctx, "rep_a", json.RawMessage(`{}`)))
	require.NoError(t, store.Enqueue(ctx, "shops", json.RawMessage(`[]`)))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "rep_b", entries[0].Key)
}

func TestPending_Remove(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, "rep_1", json.RawMessage(`{}`)))
	require.NoError(t, store.Remove(ctx, "rep_1"))

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPending_Fail_DropsPoisonEntry(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, "rep_1", json.RawMessage(`{}`)))

	dropped, err := store.Fail(ctx, "rep_1", 3)
	require.NoError(t, err)
	assert.False(t, dropped)

	dropped, err = store.Fail(ctx, "rep_1", 3)
	require.NoError(t, err)
	assert.False(t, dropped)

	dropped, err = store.Fail(ctx, "rep_1", 3)
	require.NoError(t, err)
	assert.True(t, dropped, "third failed attempt reaches the cap")

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPending_Fail_UnknownKey(t *testing.T) {
	store := createTestStorage(t)

	dropped, err := store.Fail(context.Background(), "rep_ghost", 3)
	require.NoError(t, err)
	assert.False(t, dropped)
}

func TestPending_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Enqueue(ctx, "rep_1", json.RawMessage(`{"v":1}`)))

	// Reopen over the same file.
	path := store.db.Path()
	require.NoError(t, store.Close())

	reopened := New(path, store.logger)
	defer func() { require.NoError(t, reopened.Close()) }()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `{"v":1}`, string(entries[0].Data))
}
