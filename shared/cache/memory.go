package cache

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/rs/zerolog/log"
)

// noExpiry stands in for redis' "no TTL" when duration is zero.
const noExpiry = 100 * 365 * 24 * time.Hour

type memoryCache struct {
	store *ccache.Cache[[]byte]
	otel  otel.Otel
}

// NewMemoryCache keeps entries in process, bounded by maxSize items.
func NewMemoryCache(maxSize int64, ot otel.Otel) Cache {
	if maxSize <= 0 {
		maxSize = 1000
	}

	return &memoryCache{
		store: ccache.New(ccache.Configure[[]byte]().MaxSize(maxSize)),
		otel:  ot,
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	removed := cache.store.DeletePrefix(prefix)
	log.Debug().Str("MemoryCache", "Clear").Str("prefix", prefix).Int("removed", removed).Msg("cleared cache prefix")

	return nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.store.Delete(key)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	item := cache.store.Get(key)
	if item == nil || item.Expired() {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	if err := decode(item.Value(), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("MemoryCache", "Get").Msg("failed to unmarshal cache")

		return err
	}

	return nil
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("MemoryCache", "Save").Msg("failed to marshal cache")

		return err
	}

	ttl := time.Second * time.Duration(duration)
	if duration <= 0 {
		ttl = noExpiry
	}

	cache.store.Set(key, data, ttl)

	return nil
}
