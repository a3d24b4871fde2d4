package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "job-position:missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "profile:user_001", []byte(`{"userId":"user_001"}`)))

	value, err := store.Get(ctx, "profile:user_001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"user_001"}`, string(value))
}

func TestMemoryStore_SetReplacesValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":1}`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":2}`)))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(value))
}

func TestMemoryStore_DeleteMissingKeyIsNoError(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "never-set"))
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "job-application:pos_001:user_001", []byte(`{}`)))
	require.NoError(t, store.Set(ctx, "job-application:pos_001:user_002", []byte(`{}`)))
	require.NoError(t, store.Set(ctx, "job-application:pos_002:user_001", []byte(`{}`)))

	records, err := store.GetByPrefix(ctx, "job-application:pos_001:")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, records, "job-application:pos_001:user_001")
	assert.Contains(t, records, "job-application:pos_001:user_002")
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":1}`)))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(again))
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "job-position:pos_001", JobPositionKey("pos_001"))
	assert.Equal(t, "profile:user_001", ProfileKey("user_001"))
	assert.Equal(t, "job-application:pos_001:user_001", ApplicationKey("pos_001", "user_001"))
}
