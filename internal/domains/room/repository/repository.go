package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/storage"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
)

type Room interface {
	List(ctx context.Context) []model.Room
	Get(ctx context.Context, id int) (model.Room, error)
	Update(ctx context.Context, id int, mutate func(room *model.Room) error) (model.Room, error)
	Seed(ctx context.Context, rooms []model.Room) (bool, error)
}

type repositoryImpl struct {
	collection *gRepo.Collection[model.Room]
	otel       otel.Otel
}

func New(cfg *config.Config, blob storage.Blob, otel otel.Otel) Room {
	name := cfg.Storage.Rooms
	if name == constant.Empty {
		name = model.BlobName
	}

	return &repositoryImpl{
		collection: gRepo.NewCollection[model.Room](model.EntityName, name, blob, otel),
		otel:       otel,
	}
}

func errRoomNotFound(id int) error {
	return failure.NotFound(fmt.Sprintf("room %d not found", id))
}

func (r *repositoryImpl) List(ctx context.Context) []model.Room {
	return r.collection.List(ctx)
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Room, error) {
	room, ok := r.collection.Find(ctx, func(room model.Room) bool { return room.ID == id })
	if !ok {
		return model.Room{}, errRoomNotFound(id)
	}

	return room, nil
}

// Update applies mutate to the room with the given id and persists the collection.
// An unknown id fails with NotFound and nothing is written.
func (r *repositoryImpl) Update(ctx context.Context, id int, mutate func(room *model.Room) error) (model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Update")
	defer scope.End()

	scope.SetAttribute("room_id", id)

	var updated model.Room

	_, err := r.collection.Mutate(ctx, func(rooms []model.Room) ([]model.Room, error) {
		for i := range rooms {
			if rooms[i].ID != id {
				continue
			}

			if err := mutate(&rooms[i]); err != nil {
				return nil, err
			}

			updated = rooms[i]

			return rooms, nil
		}

		return nil, errRoomNotFound(id)
	})
	if err != nil {
		scope.TraceError(err)

		return model.Room{}, err
	}

	return updated, nil
}

func (r *repositoryImpl) Seed(ctx context.Context, rooms []model.Room) (bool, error) {
	return r.collection.Seed(ctx, rooms) //nolint:wrapcheck
}
