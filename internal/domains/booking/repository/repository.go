package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/storage"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"slices"
)

type Booking interface {
	List(ctx context.Context) []model.Booking
	Append(ctx context.Context, booking model.Booking) error
	Remove(ctx context.Context, id string) error
}

type repositoryImpl struct {
	collection *gRepo.Collection[model.Booking]
	otel       otel.Otel
}

func New(cfg *config.Config, blob storage.Blob, otel otel.Otel) Booking {
	name := cfg.Storage.Bookings
	if name == constant.Empty {
		name = model.BlobName
	}

	return &repositoryImpl{
		collection: gRepo.NewCollection[model.Booking](model.EntityName, name, blob, otel),
		otel:       otel,
	}
}

// List returns bookings in insertion order.
func (r *repositoryImpl) List(ctx context.Context) []model.Booking {
	return r.collection.List(ctx)
}

func (r *repositoryImpl) Append(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Append")
	defer scope.End()

	scope.SetAttribute("booking_id", booking.ID)

	_, err := r.collection.Mutate(ctx, func(bookings []model.Booking) ([]model.Booking, error) {
		return append(bookings, booking), nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Remove(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Remove")
	defer scope.End()

	scope.SetAttribute("booking_id", id)

	_, err := r.collection.Mutate(ctx, func(bookings []model.Booking) ([]model.Booking, error) {
		idx := slices.IndexFunc(bookings, func(b model.Booking) bool { return b.ID == id })
		if idx < 0 {
			return nil, failure.NotFound(fmt.Sprintf("booking %s not found", id))
		}

		return slices.Delete(bookings, idx, idx+1), nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
