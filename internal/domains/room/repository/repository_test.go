package repository_test

import (
	"context"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/storage"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) repository.Room {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Rooms = "rooms.json"

	return repository.New(cfg, storage.NewFile(t.TempDir(), mocks.NewOtel()), mocks.NewOtel())
}

func TestRoomRepository_SeedAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	assert.Empty(t, repo.List(ctx))

	seeded, err := repo.Seed(ctx, model.SeedRooms())
	require.NoError(t, err)
	assert.True(t, seeded)

	room, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", room.Type)

	_, err = repo.Get(ctx, 999)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Seed(ctx, model.SeedRooms())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, 1, func(room *model.Room) error {
		room.Occupied = true

		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Occupied)

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, stored.Occupied)

	other, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.False(t, other.Occupied)
}

func TestRoomRepository_UpdateUnknownLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Seed(ctx, model.SeedRooms())
	require.NoError(t, err)

	before := repo.List(ctx)

	called := false
	_, err = repo.Update(ctx, 999, func(room *model.Room) error {
		called = true

		return nil
	})

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.False(t, called)
	assert.Equal(t, before, repo.List(ctx))
}

func TestRoomRepository_UpdateMutatorErrorAborts(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Seed(ctx, model.SeedRooms())
	require.NoError(t, err)

	_, err = repo.Update(ctx, 1, func(room *model.Room) error {
		room.Occupied = true

		return room.SetFlag("bogus", true)
	})
	assert.ErrorIs(t, err, model.ErrUnknownFlag)

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, stored.Occupied)
}
