package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medication-tracker/internal/ports/kvstore"
)

func setupTestStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewKVStore(client, "test:"), mr
}

func TestKVStore_GetMissingKey(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.Get(context.Background(), "medicationTrackerLog")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestKVStore_SetUsesPrefixAndNoTTL(t *testing.T) {
	s, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "medicationTrackerLog", []byte(`{"version":1}`)))

	raw, err := mr.Get("test:medicationTrackerLog")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, raw)
	assert.Zero(t, mr.TTL("test:medicationTrackerLog"))

	got, err := s.Get(ctx, "medicationTrackerLog")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), got)
}

func TestKVStore_Delete(t *testing.T) {
	s, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	assert.False(t, mr.Exists("test:k"))

	// borrar una key inexistente no es error
	assert.NoError(t, s.Delete(ctx, "k"))
}

func TestKVStore_ServerDown(t *testing.T) {
	s, mr := setupTestStore(t)
	mr.Close()

	err := s.Set(context.Background(), "k", []byte("v"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, kvstore.ErrNotFound)
}

func TestNewKVStore_DefaultPrefix(t *testing.T) {
	s := NewKVStore(nil, " ")
	assert.Equal(t, defaultPrefix, s.prefix)
}
