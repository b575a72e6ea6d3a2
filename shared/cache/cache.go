package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	infraRedis "hotel/infras/redis"
	"hotel/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

// Cache stores JSON encoded values with a lifetime in seconds. A missing key yields an error wrapping Nil.
type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

// Counters holds short lived request counters. It is always a separate store from the session
// Cache so that new counter keys cannot evict sessions from a size bounded backend.
type Counters interface {
	Cache
}

// New selects the cache backend configured by CACHE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) Cache {
	return open(cfg, ot, "sessions")
}

// NewCounters opens a second store on the configured driver for rate limit counters.
func NewCounters(cfg *config.Config, ot otel.Otel) Counters {
	return open(cfg, ot, "counters")
}

func open(cfg *config.Config, ot otel.Otel, purpose string) Cache {
	switch cfg.Cache.Driver {
	case constant.CacheDriverRedis:
		log.Info().Str("driver", cfg.Cache.Driver).Str("purpose", purpose).Msg("Using redis cache")

		return NewRedisCache(infraRedis.New(cfg), ot)
	case constant.CacheDriverMemcached:
		log.Info().Str("driver", cfg.Cache.Driver).Str("purpose", purpose).Strs("hosts", cfg.Cache.Memcached.Hosts).Msg("Using memcached cache")

		return NewMemcachedCache(cfg.Cache.Memcached.Hosts, ot)
	default:
		log.Info().Str("driver", constant.CacheDriverMemory).Str("purpose", purpose).Int64("max_size", cfg.Cache.Memory.MaxSize).Msg("Using in-process cache")

		return NewMemoryCache(cfg.Cache.Memory.MaxSize, ot)
	}
}

func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal cache value: %w", err)
		}

		return data, nil
	}
}

func decode(data []byte, value any) error {
	switch v := value.(type) {
	case *string:
		*v = string(data)
	case *[]byte:
		*v = data
	default:
		if err := json.Unmarshal(data, value); err != nil {
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}
