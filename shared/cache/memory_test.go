package cache_test

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionValue struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(10, mocks.NewOtel())

	t.Run("missing key wraps Nil", func(t *testing.T) {
		var value sessionValue
		err := c.Get(ctx, "hotel:session:missing", &value)

		require.Error(t, err)
		assert.True(t, errors.Is(err, cache.Nil))
	})

	t.Run("save and get struct", func(t *testing.T) {
		require.NoError(t, c.Save(ctx, "hotel:session:1", sessionValue{ID: "1", IsAdmin: true}, 60))

		var value sessionValue
		require.NoError(t, c.Get(ctx, "hotel:session:1", &value))
		assert.Equal(t, sessionValue{ID: "1", IsAdmin: true}, value)
	})

	t.Run("save and get string and int", func(t *testing.T) {
		require.NoError(t, c.Save(ctx, "hotel:raw", "plain", 0))
		require.NoError(t, c.Save(ctx, "hotel:limiter:ip", 3, 60))

		var raw string
		require.NoError(t, c.Get(ctx, "hotel:raw", &raw))
		assert.Equal(t, "plain", raw)

		var count int
		require.NoError(t, c.Get(ctx, "hotel:limiter:ip", &count))
		assert.Equal(t, 3, count)
	})

	t.Run("delete removes key", func(t *testing.T) {
		require.NoError(t, c.Delete(ctx, "hotel:session:1"))

		var value sessionValue
		assert.True(t, errors.Is(c.Get(ctx, "hotel:session:1", &value), cache.Nil))
	})

	t.Run("clear removes prefix only", func(t *testing.T) {
		require.NoError(t, c.Save(ctx, "hotel:session:a", sessionValue{ID: "a"}, 60))
		require.NoError(t, c.Save(ctx, "hotel:session:b", sessionValue{ID: "b"}, 60))
		require.NoError(t, c.Clear(ctx, "hotel:session:"))

		var value sessionValue
		assert.True(t, errors.Is(c.Get(ctx, "hotel:session:a", &value), cache.Nil))

		var raw string
		assert.NoError(t, c.Get(ctx, "hotel:raw", &raw))
	})
}

func TestNewDefaultsToMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Driver = ""

	c := cache.New(cfg, mocks.NewOtel())
	require.NotNil(t, c)

	require.NoError(t, c.Save(context.Background(), "k", "v", 10))
}

func TestCountersAreSeparateFromSessions(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Cache.Memory.MaxSize = 10

	sessions := cache.New(cfg, mocks.NewOtel())
	counters := cache.NewCounters(cfg, mocks.NewOtel())

	require.NoError(t, sessions.Save(ctx, "hotel:session:admin", sessionValue{ID: "admin", IsAdmin: true}, 60))

	for i := range 200 {
		require.NoError(t, counters.Save(ctx, fmt.Sprintf("hotel:limiter:10.0.0.1:agent-%d", i), 1, 60))
	}

	var value sessionValue
	require.NoError(t, sessions.Get(ctx, "hotel:session:admin", &value))
	assert.True(t, value.IsAdmin)

	var count int
	assert.True(t, errors.Is(counters.Get(ctx, "hotel:session:admin", &count), cache.Nil))
}
