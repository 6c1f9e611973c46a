package auth

import (
	"context"
	"testing"
	"time"

	"barberbook/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStorage(client, "sess-1"), mr
}

func TestRedisStorageRoundTrip(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, utils.StorageKeyAuthToken, "tok-1"))

	got, err := storage.GetItem(ctx, utils.StorageKeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, storage.RemoveItem(ctx, utils.StorageKeyAuthToken))
	got, err = storage.GetItem(ctx, utils.StorageKeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisStorageMissingKeyIsNotAnError(t *testing.T) {
	storage, _ := newTestStorage(t)

	got, err := storage.GetItem(context.Background(), "never-written")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisStorageIsolatesSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	a := NewRedisStorage(client, "sess-a")
	b := NewRedisStorage(client, "sess-b")
	ctx := context.Background()

	require.NoError(t, a.SetItem(ctx, utils.StorageKeyAuthToken, "tok-a"))

	got, err := b.GetItem(ctx, utils.StorageKeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, got, "sessions must not share storage")
}

func TestRedisStorageEntriesExpire(t *testing.T) {
	storage, mr := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, utils.StorageKeyAuthToken, "tok-1"))
	mr.FastForward(8 * 24 * time.Hour)

	got, err := storage.GetItem(ctx, utils.StorageKeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}
