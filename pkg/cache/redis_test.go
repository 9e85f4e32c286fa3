package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSetGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestDelete(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAcquireLock(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	ok, err := c.AcquireLock(ctx, "sync:zoho", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second acquisition fails while held
	ok, err = c.AcquireLock(ctx, "sync:zoho", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// Lock expires on its own
	mr.FastForward(2 * time.Minute)
	ok, err = c.AcquireLock(ctx, "sync:zoho", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReleaseLock(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	ok, err := c.AcquireLock(ctx, "sync:espocrm", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.ReleaseLock(ctx, "sync:espocrm"))

	ok, err = c.AcquireLock(ctx, "sync:espocrm", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
