package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NoopCache{}

	var dest []string
	found, err := c.Get(ctx, "reports:genres", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)

	assert.NoError(t, c.Set(ctx, "k", []string{"a"}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePattern(ctx, "reports:*"))
	assert.NoError(t, c.Ping(ctx))
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	c := NewRedisCache(client, "library:")
	assert.Equal(t, "library:reports:genres", c.key("reports:genres"))
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	// No round trip happens for an empty key list.
	assert.NoError(t, NewRedisCache(client, "").Delete(context.Background()))
}
