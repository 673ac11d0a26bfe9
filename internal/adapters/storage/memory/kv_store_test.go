package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medication-tracker/internal/ports/kvstore"
)

func TestKVStore_GetMissingKey(t *testing.T) {
	s := NewKVStore()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	// borrar dos veces no falla
	assert.NoError(t, s.Delete(ctx, "k"))
}

func TestKVStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestKVStore_EmptyKeyRejected(t *testing.T) {
	err := NewKVStore().Set(context.Background(), "  ", []byte("v"))
	assert.Error(t, err)
}
