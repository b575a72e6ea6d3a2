package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hotel/infras/otel"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/rs/zerolog/log"
)

var errPrefixClearUnsupported = errors.New("memcached cannot clear by prefix")

type memcachedCache struct {
	client *memcache.Client
	otel   otel.Otel
}

func NewMemcachedCache(hosts []string, ot otel.Otel) Cache {
	return &memcachedCache{
		client: memcache.New(hosts...),
		otel:   ot,
	}
}

// memcached keys are limited to 250 bytes without whitespace.
func memcachedKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Clear implements Cache.
func (cache *memcachedCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)
	scope.TraceError(errPrefixClearUnsupported)

	return errPrefixClearUnsupported
}

// Delete implements Cache.
func (cache *memcachedCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	err := cache.client.Delete(memcachedKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		scope.TraceError(err)
		log.Error().Str("key", key).Err(err).Str("MemcachedCache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get implements Cache.
func (cache *memcachedCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	item, err := cache.client.Get(memcachedKey(key))
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return fmt.Errorf("failed to get cache value: %w", Nil)
		}

		scope.TraceError(err)

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err = decode(item.Value, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("MemcachedCache", "Get").Msg("failed to unmarshal cache")

		return err
	}

	return nil
}

// Save implements Cache.
func (cache *memcachedCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	err = cache.client.Set(&memcache.Item{
		Key:        memcachedKey(key),
		Value:      data,
		Expiration: int32(max(duration, 0)),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("MemcachedCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	return nil
}
