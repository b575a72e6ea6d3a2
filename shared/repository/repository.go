package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/storage"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"
)

const jsonIndent = "  "

// Collection keeps a whole collection of T in one named blob. Every change reads the
// full document, applies the mutation in memory and writes the full document back.
// Writes in one process are serialised by the collection lock.
type Collection[T any] struct {
	name    string
	entitas string
	blob    storage.Blob
	otel    otel.Otel
	mu      sync.RWMutex
}

func NewCollection[T any](entitasName, blobName string, blob storage.Blob, otl otel.Otel) *Collection[T] {
	return &Collection[T]{
		name:    blobName,
		entitas: entitasName,
		blob:    blob,
		otel:    otl,
	}
}

// load returns an empty collection when the blob is missing or does not hold a JSON array.
func (repo *Collection[T]) load(ctx context.Context) []T {
	items := []T{}

	data, err := repo.blob.Read(ctx, repo.name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			log.Warn().Err(err).Str(constant.OtelBlobAttributeKey, repo.name).Msg("unreadable collection, treating as empty")
		}

		return items
	}

	if err = json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str(constant.OtelBlobAttributeKey, repo.name).Msg("malformed collection, treating as empty")

		return []T{}
	}

	if items == nil {
		items = []T{}
	}

	return items
}

func (repo *Collection[T]) store(ctx context.Context, items []T) error {
	data, err := json.MarshalIndent(items, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode collection (%s): %w", repo.entitas, err)
	}

	if err = repo.blob.Write(ctx, repo.name, data); err != nil {
		logger.ErrorWithStack(err)

		return failure.StorageUnavailable(fmt.Errorf("failed to write collection (%s): %w", repo.entitas, err)) //nolint:wrapcheck
	}

	return nil
}

// List returns a snapshot of the collection.
func (repo *Collection[T]) List(ctx context.Context) []T {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := repo.load(ctx)
	scope.SetAttribute("collection.size", len(items))

	return items
}

// Find returns the first item matching pred.
func (repo *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.load(ctx) {
		if pred(item) {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Mutate applies fn to the current collection and persists the result once.
// An error from fn aborts without writing. A failed write is reported as StorageUnavailable.
func (repo *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) (result []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Mutate", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	result, err = fn(repo.load(ctx))
	if err != nil {
		return nil, err
	}

	if err = repo.store(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Seed writes items only when the blob does not exist yet. It reports whether it wrote.
func (repo *Collection[T]) Seed(ctx context.Context, items []T) (seeded bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Seed", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	_, err = repo.blob.Read(ctx, repo.name)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, storage.ErrNotExist) {
		log.Warn().Err(err).Str(constant.OtelBlobAttributeKey, repo.name).Msg("cannot inspect collection, skipping seed")

		return false, nil
	}

	if err = repo.store(ctx, items); err != nil {
		return false, err
	}

	log.Info().Str(constant.OtelBlobAttributeKey, repo.name).Int("count", len(items)).Msg("collection seeded")

	return true, nil
}
